package examController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	"lingua/services"
	"lingua/utils"
	examValidator "lingua/validators/exam"
)

func engineError(c *fiber.Ctx, err error) error {
	if services.IsStorageFailure(err) {
		log.Printf("Storage failure: %v", err)
	}
	return middleware.JsonResponse(c, services.HTTPStatus(err), false, services.Message(err), nil)
}

// submitExam runs one exam submission for the acting user.
func submitExam(c *fiber.Ctx, examType string) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	levelID := c.Locals("levelID").(uint)

	reqData, ok := c.Locals("validatedSubmission").(*examValidator.SubmissionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := services.SubmitExam(database.Database.Db, userID, levelID, examType,
		*reqData.CorrectWords, *reqData.WrongWords)
	if err != nil {
		return engineError(c, err)
	}

	// A successful final exam completes the level; notify out of band.
	if examType == models.ExamTypeFinal {
		var user models.User
		var level models.Level
		if database.Database.Db.First(&user, userID).Error == nil &&
			database.Database.Db.First(&level, levelID).Error == nil {
			utils.NotifyLevelCompleted(user, level, result.Percentage)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam submitted successfully!", fiber.Map{
		"user_id":       result.UserID,
		"level_id":      result.LevelID,
		"correct_words": result.CorrectWords,
		"wrong_words":   result.WrongWords,
		"percentage":    utils.Round2(result.Percentage),
		"type":          result.Type,
	})
}

// SubmitInitialExam records a placement exam attempt.
func SubmitInitialExam(c *fiber.Ctx) error {
	return submitExam(c, models.ExamTypeInitial)
}

// SubmitFinalExam records a final exam attempt; requires the gate.
func SubmitFinalExam(c *fiber.Ctx) error {
	return submitExam(c, models.ExamTypeFinal)
}

// GetExamResults lists the attempt history for a user on a level.
func GetExamResults(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	levelID := c.Locals("levelID").(uint)

	// Users can only access their own exam results unless they're admin
	if !middleware.OwnerOrAdmin(c, targetUserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	results, err := services.ExamHistory(database.Database.Db, targetUserID, levelID)
	if err != nil {
		return engineError(c, err)
	}

	response := make([]fiber.Map, 0, len(results))
	for _, result := range results {
		response = append(response, fiber.Map{
			"user_id":       result.UserID,
			"level_id":      result.LevelID,
			"correct_words": result.CorrectWords,
			"wrong_words":   result.WrongWords,
			"percentage":    utils.Round2(result.Percentage),
			"type":          result.Type,
			"timestamp":     result.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam results fetched successfully!", response)
}
