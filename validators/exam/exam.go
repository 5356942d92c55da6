package examValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
)

var validate = validator.New()

// SubmissionRequest is the validated exam submission payload. Pointers
// distinguish a missing count from a legitimate zero.
type SubmissionRequest struct {
	CorrectWords *int `json:"correct_words" validate:"required,gte=0"`
	WrongWords   *int `json:"wrong_words" validate:"required,gte=0"`
}

// LevelIDParam validates the :levelId path parameter.
func LevelIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		levelIDStr := strings.TrimSpace(c.Params("levelId"))
		levelID, err := strconv.Atoi(levelIDStr)
		if err != nil || levelID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Level ID!", nil)
		}

		c.Locals("levelID", uint(levelID))
		return c.Next()
	}
}

func Submission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmissionRequest)
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

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// HistoryParams validates the :levelId and :userId path parameters.
func HistoryParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		levelIDStr := strings.TrimSpace(c.Params("levelId"))
		levelID, err := strconv.Atoi(levelIDStr)
		if err != nil || levelID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Level ID!", nil)
		}

		userIDStr := strings.TrimSpace(c.Params("userId"))
		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("levelID", uint(levelID))
		c.Locals("targetUserID", uint(userID))
		return c.Next()
	}
}
