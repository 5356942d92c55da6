package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lingua/database"
	"lingua/middleware"
	"lingua/services"
	"lingua/utils"
)

// PlatformStatistics returns the platform-wide summary (admin only).
// Rates are rounded to two decimals here, at the response boundary.
func PlatformStatistics(c *fiber.Ctx) error {
	stats, err := services.PlatformStatistics(database.Database.Db)
	if err != nil {
		log.Printf("Error computing platform statistics: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}

	popular := make([]fiber.Map, 0, len(stats.PopularLevels))
	for _, level := range stats.PopularLevels {
		popular = append(popular, fiber.Map{
			"level_id":  level.LevelID,
			"name":      level.Name,
			"purchases": level.Purchases,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", fiber.Map{
		"total_users":      stats.TotalUsers,
		"total_levels":     stats.TotalLevels,
		"total_purchases":  stats.TotalPurchases,
		"completed_levels": stats.CompletedLevels,
		"completion_rate":  utils.Round2(stats.CompletionRate),
		"popular_levels":   popular,
	})
}

// UserStatistics returns one user's summary (admin only).
func UserStatistics(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(uint)

	stats, err := services.UserStatistics(database.Database.Db, targetUserID)
	if err != nil {
		if services.IsStorageFailure(err) {
			log.Printf("Error computing user statistics: %v", err)
		}
		return middleware.JsonResponse(c, services.HTTPStatus(err), false, services.Message(err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", fiber.Map{
		"user_id":               stats.UserID,
		"user_name":             stats.UserName,
		"purchased_levels":      stats.PurchasedLevels,
		"completed_levels":      stats.CompletedLevels,
		"completion_rate":       utils.Round2(stats.CompletionRate),
		"average_initial_score": utils.Round2(stats.AverageInitialScore),
		"average_final_score":   utils.Round2(stats.AverageFinalScore),
		"average_improvement":   utils.Round2(stats.AverageImprovement),
		"total_exams_taken":     stats.TotalExamsTaken,
	})
}
