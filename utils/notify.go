package utils

import (
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"lingua/config"
	"lingua/models"
)

// NotifyLevelCompleted fires the completion webhook and congratulation
// email after a successful final exam. Both are best effort; failures are
// logged and never surface to the request.
func NotifyLevelCompleted(user models.User, level models.Level, percentage float64) {
	go postCompletionWebhook(user, level, percentage)
	go sendCompletionEmail(user, level, percentage)
}

func postCompletionWebhook(user models.User, level models.Level, percentage float64) {
	webhookURL := config.AppConfig.CompletionWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":      "level_completed",
			"user_id":    user.ID,
			"user_email": user.Email,
			"level_id":   level.ID,
			"level_name": level.Name,
			"percentage": Round2(percentage),
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error calling completion webhook: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Completion webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}

func sendCompletionEmail(user models.User, level models.Level, percentage float64) {
	if config.AppConfig.SendgridApiKey == "" {
		return
	}

	from := mail.NewEmail("Lingua", config.AppConfig.EmailSender)
	to := mail.NewEmail(user.Name, user.Email)
	subject := fmt.Sprintf("You completed %s!", level.Name)
	body := fmt.Sprintf(
		"Congratulations %s! You finished the level %q with a final exam score of %.2f%%.",
		user.Name, level.Name, Round2(percentage))

	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending completion email: %v", err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Completion email rejected with %d: %s", resp.StatusCode, resp.Body)
	}
}
