package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lingua/models"
)

// lockForUpdate adds a row lock on dialects that support it. SQLite (used
// by the tests) serializes writers on its own and rejects FOR UPDATE.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Enroll purchases a level for a user. It creates the enrollment plus one
// progress row per video in the level, first video opened, in a single
// transaction. A second purchase of the same pair fails without side
// effects.
func Enroll(db *gorm.DB, userID, levelID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment

	err := db.Transaction(func(tx *gorm.DB) error {
		var level models.Level
		if err := tx.First(&level, levelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLevelNotFound
			}
			return storageFailure(err)
		}

		// Lock the pair before the duplicate check so two concurrent
		// purchases cannot both pass it. The unique index on
		// (user_id, level_id) is the backstop.
		var existing models.Enrollment
		err := lockForUpdate(tx).
			Where("user_id = ? AND level_id = ?", userID, levelID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyEnrolled
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return storageFailure(err)
		}

		enrollment = models.Enrollment{
			UserID:  userID,
			LevelID: levelID,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return storageFailure(err)
		}

		var videos []models.Video
		if err := tx.Where("level_id = ?", levelID).
			Order("order_index asc, id asc").
			Find(&videos).Error; err != nil {
			return storageFailure(err)
		}

		for i, video := range videos {
			progress := models.VideoProgress{
				EnrollmentID: enrollment.ID,
				VideoID:      video.ID,
				Position:     i,
				IsOpened:     i == 0, // first video is opened by default
			}
			if err := tx.Create(&progress).Error; err != nil {
				return storageFailure(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// VideoProgressSummary is one video's unlock/completion state in a
// progress report.
type VideoProgressSummary struct {
	VideoID     uint `json:"video_id"`
	IsOpened    bool `json:"is_opened"`
	IsCompleted bool `json:"is_completed"`
}

// LevelProgress summarizes one enrollment for progress reporting.
type LevelProgress struct {
	UserID               uint                   `json:"user_id"`
	LevelID              uint                   `json:"level_id"`
	LevelName            string                 `json:"level_name"`
	CompletedVideosCount int                    `json:"completed_videos_count"`
	TotalVideosCount     int                    `json:"total_videos_count"`
	VideosProgress       []VideoProgressSummary `json:"videos_progress"`
	IsCompleted          bool                   `json:"is_completed"`
	CanTakeFinalExam     bool                   `json:"can_take_final_exam"`
	InitialExamScore     *float64               `json:"initial_exam_score"`
	FinalExamScore       *float64               `json:"final_exam_score"`
	ScoreDifference      *float64               `json:"score_difference"`
}

// GetUserProgress returns one summary per enrollment owned by the user,
// videos in position order. Read-only.
func GetUserProgress(db *gorm.DB, userID uint) ([]LevelProgress, error) {
	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).
		Order("id asc").
		Find(&enrollments).Error; err != nil {
		return nil, storageFailure(err)
	}

	result := make([]LevelProgress, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var level models.Level
		if err := db.First(&level, enrollment.LevelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, storageFailure(err)
		}

		var rows []models.VideoProgress
		if err := db.Where("enrollment_id = ?", enrollment.ID).
			Order("position asc").
			Find(&rows).Error; err != nil {
			return nil, storageFailure(err)
		}

		summary := LevelProgress{
			UserID:           enrollment.UserID,
			LevelID:          level.ID,
			LevelName:        level.Name,
			TotalVideosCount: len(rows),
			VideosProgress:   make([]VideoProgressSummary, 0, len(rows)),
			IsCompleted:      enrollment.IsCompleted,
			CanTakeFinalExam: enrollment.CanTakeFinalExam,
			InitialExamScore: enrollment.InitialExamScore,
			FinalExamScore:   enrollment.FinalExamScore,
			ScoreDifference:  enrollment.ScoreDifference,
		}
		for _, row := range rows {
			summary.VideosProgress = append(summary.VideosProgress, VideoProgressSummary{
				VideoID:     row.VideoID,
				IsOpened:    row.IsOpened,
				IsCompleted: row.IsCompleted,
			})
			if row.IsCompleted {
				summary.CompletedVideosCount++
			}
		}

		result = append(result, summary)
	}

	return result, nil
}
