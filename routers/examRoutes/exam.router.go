package examRoutes

import (
	"github.com/gofiber/fiber/v2"

	examController "lingua/controllers/exam"
	"lingua/middleware"
	examValidator "lingua/validators/exam"
)

// SetupExamRoutes sets up exam submission and history routes
func SetupExamRoutes(app *fiber.App) {
	examGroup := app.Group("/exams")

	examGroup.Post("/:levelId/initial", middleware.JWTMiddleware, examValidator.LevelIDParam(), examValidator.Submission(), examController.SubmitInitialExam)
	examGroup.Post("/:levelId/final", middleware.JWTMiddleware, examValidator.LevelIDParam(), examValidator.Submission(), examController.SubmitFinalExam)
	examGroup.Get("/:levelId/user/:userId", middleware.JWTMiddleware, examValidator.HistoryParams(), examController.GetExamResults)
}
