package levelValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
)

var validate = validator.New()

// LevelIDParam validates the :id path parameter.
func LevelIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		levelIDStr := strings.TrimSpace(c.Params("id"))
		if levelIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Level ID is required!", nil)
		}

		levelID, err := strconv.Atoi(levelIDStr)
		if err != nil || levelID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Level ID!", nil)
		}

		c.Locals("levelID", uint(levelID))
		return c.Next()
	}
}

// CreateLevelRequest is the validated level creation payload.
type CreateLevelRequest struct {
	Name                string   `json:"name" validate:"required,min=2"`
	Description         string   `json:"description"`
	WelcomeVideoURL     string   `json:"welcome_video_url"`
	ImageURL            string   `json:"image_url"`
	Price               *float64 `json:"price" validate:"required,gte=0"`
	InitialExamQuestion string   `json:"initial_exam_question"`
	FinalExamQuestion   string   `json:"final_exam_question"`
}

func CreateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLevelRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateLevel", reqData)
		return c.Next()
	}
}

// UpdateLevelRequest is the validated level update payload. Nil fields
// keep the current value.
type UpdateLevelRequest struct {
	Name                *string  `json:"name"`
	Description         *string  `json:"description"`
	WelcomeVideoURL     *string  `json:"welcome_video_url"`
	ImageURL            *string  `json:"image_url"`
	Price               *float64 `json:"price" validate:"omitempty,gte=0"`
	InitialExamQuestion *string  `json:"initial_exam_question"`
	FinalExamQuestion   *string  `json:"final_exam_question"`
}

func UpdateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLevelRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateLevel", reqData)
		return c.Next()
	}
}

// VideoRequest is the validated payload for adding or updating a video.
type VideoRequest struct {
	YoutubeLink string   `json:"youtube_link" validate:"required,url"`
	Questions   []string `json:"questions"`
	OrderIndex  *int     `json:"order_index" validate:"omitempty,gte=0"`
}

func VideoBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VideoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

// VideoIDParam validates the :id path parameter for video routes.
func VideoIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		videoIDStr := strings.TrimSpace(c.Params("id"))
		if videoIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video ID is required!", nil)
		}

		videoID, err := strconv.Atoi(videoIDStr)
		if err != nil || videoID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Video ID!", nil)
		}

		c.Locals("videoID", uint(videoID))
		return c.Next()
	}
}
