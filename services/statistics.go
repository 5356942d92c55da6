package services

import (
	"errors"

	"gorm.io/gorm"

	"lingua/models"
)

// PopularLevel is one entry of the purchase ranking.
type PopularLevel struct {
	LevelID   uint   `json:"level_id"`
	Name      string `json:"name"`
	Purchases int64  `json:"purchases"`
}

// PlatformStats aggregates platform-wide numbers. Rates are raw here;
// rounding happens at the response boundary.
type PlatformStats struct {
	TotalUsers      int64          `json:"total_users"`
	TotalLevels     int64          `json:"total_levels"`
	TotalPurchases  int64          `json:"total_purchases"`
	CompletedLevels int64          `json:"completed_levels"`
	CompletionRate  float64        `json:"completion_rate"`
	PopularLevels   []PopularLevel `json:"popular_levels"`
}

// PlatformStatistics derives the platform summary. Pure query layer; it
// writes nothing and may read a slightly stale snapshot.
func PlatformStatistics(db *gorm.DB) (*PlatformStats, error) {
	stats := &PlatformStats{}

	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleClient).
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := db.Model(&models.Level{}).Count(&stats.TotalLevels).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := db.Model(&models.Enrollment{}).Count(&stats.TotalPurchases).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := db.Model(&models.Enrollment{}).
		Where("is_completed = ?", true).
		Count(&stats.CompletedLevels).Error; err != nil {
		return nil, storageFailure(err)
	}

	if stats.TotalPurchases > 0 {
		stats.CompletionRate = float64(stats.CompletedLevels) / float64(stats.TotalPurchases) * 100
	}

	// Top 5 levels by purchases; ties resolved by level id ascending so
	// the ranking is deterministic.
	if err := db.Model(&models.Enrollment{}).
		Select("levels.id as level_id, levels.name as name, count(enrollments.id) as purchases").
		Joins("JOIN levels ON levels.id = enrollments.level_id AND levels.deleted_at IS NULL").
		Group("levels.id, levels.name").
		Order("purchases desc, level_id asc").
		Limit(5).
		Scan(&stats.PopularLevels).Error; err != nil {
		return nil, storageFailure(err)
	}

	return stats, nil
}

// UserStats aggregates one user's enrollment and exam numbers.
type UserStats struct {
	UserID              uint    `json:"user_id"`
	UserName            string  `json:"user_name"`
	PurchasedLevels     int64   `json:"purchased_levels"`
	CompletedLevels     int64   `json:"completed_levels"`
	CompletionRate      float64 `json:"completion_rate"`
	AverageInitialScore float64 `json:"average_initial_score"`
	AverageFinalScore   float64 `json:"average_final_score"`
	AverageImprovement  float64 `json:"average_improvement"`
	TotalExamsTaken     int64   `json:"total_exams_taken"`
}

// UserStatistics derives the per-user summary. Averages are taken over
// the exam result log per type, not over the cached enrollment scores;
// empty categories average to zero and improvement requires both.
func UserStatistics(db *gorm.DB, userID uint) (*UserStats, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageFailure(err)
	}

	stats := &UserStats{
		UserID:   user.ID,
		UserName: user.Name,
	}

	if err := db.Model(&models.Enrollment{}).
		Where("user_id = ?", userID).
		Count(&stats.PurchasedLevels).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&stats.CompletedLevels).Error; err != nil {
		return nil, storageFailure(err)
	}
	if stats.PurchasedLevels > 0 {
		stats.CompletionRate = float64(stats.CompletedLevels) / float64(stats.PurchasedLevels) * 100
	}

	initialCount, err := examAverage(db, userID, models.ExamTypeInitial, &stats.AverageInitialScore)
	if err != nil {
		return nil, err
	}
	finalCount, err := examAverage(db, userID, models.ExamTypeFinal, &stats.AverageFinalScore)
	if err != nil {
		return nil, err
	}

	if initialCount > 0 && finalCount > 0 {
		stats.AverageImprovement = stats.AverageFinalScore - stats.AverageInitialScore
	}

	if err := db.Model(&models.ExamResult{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalExamsTaken).Error; err != nil {
		return nil, storageFailure(err)
	}

	return stats, nil
}

// examAverage computes the average percentage over one exam type for the
// user and reports how many attempts it covered.
func examAverage(db *gorm.DB, userID uint, examType string, avg *float64) (int64, error) {
	var count int64
	if err := db.Model(&models.ExamResult{}).
		Where("user_id = ? AND type = ?", userID, examType).
		Count(&count).Error; err != nil {
		return 0, storageFailure(err)
	}
	if count == 0 {
		return 0, nil
	}

	row := db.Model(&models.ExamResult{}).
		Where("user_id = ? AND type = ?", userID, examType).
		Select("avg(percentage)").
		Row()
	if err := row.Scan(avg); err != nil {
		return 0, storageFailure(err)
	}

	return count, nil
}
