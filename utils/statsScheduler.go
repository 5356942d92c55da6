package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"lingua/database"
	"lingua/services"
)

// logDigest logs digest events with timestamp
func logDigest(message string) {
	log.Printf("[STATS-DIGEST %s] %s", time.Now().Format(time.RFC3339), message)
}

// runStatsDigest logs a snapshot of the platform statistics. Read-only;
// it never touches enrollment state.
func runStatsDigest() {
	stats, err := services.PlatformStatistics(database.Database.Db)
	if err != nil {
		logDigest("Error computing platform statistics: " + err.Error())
		return
	}

	logDigest(fmt.Sprintf(
		"users=%d levels=%d purchases=%d completed=%d completion_rate=%.2f",
		stats.TotalUsers, stats.TotalLevels, stats.TotalPurchases,
		stats.CompletedLevels, Round2(stats.CompletionRate)))

	for _, level := range stats.PopularLevels {
		logDigest(fmt.Sprintf("popular level %q purchases=%d", level.Name, level.Purchases))
	}
}

// StartStatsDigest schedules the daily statistics digest
func StartStatsDigest() {
	c := cron.New()

	// Every day at 09:00
	if _, err := c.AddFunc("0 9 * * *", runStatsDigest); err != nil {
		log.Printf("Failed to schedule stats digest: %v", err)
		return
	}

	c.Start()
	logDigest("Stats digest scheduler started")
}
