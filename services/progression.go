package services

import (
	"errors"

	"gorm.io/gorm"

	"lingua/models"
)

// CompletionOutcome reports what a video completion changed.
// UnlockedVideoID is zero when the completed video was the last one.
type CompletionOutcome struct {
	UnlockedVideoID uint `json:"unlocked_video_id,omitempty"`
	ExamUnlocked    bool `json:"exam_unlocked"`
}

// CompleteVideo marks a video completed for the user's enrollment in the
// level, opens the next video in position order, and recomputes the final
// exam gate. Re-completing an already-completed video is a no-op apart
// from the gate recomputation. Everything happens in one transaction with
// the enrollment row locked, so concurrent completions for the same
// enrollment are serialized.
func CompleteVideo(db *gorm.DB, userID, levelID, videoID uint) (*CompletionOutcome, error) {
	outcome := &CompletionOutcome{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		if err := lockForUpdate(tx).
			Where("user_id = ? AND level_id = ?", userID, levelID).
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotEnrolled
			}
			return storageFailure(err)
		}

		// Rows exist only for videos present at purchase time; a video
		// added to the level afterwards has none and stays inaccessible.
		var progress models.VideoProgress
		if err := tx.Where("enrollment_id = ? AND video_id = ?", enrollment.ID, videoID).
			First(&progress).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVideoNotAccessible
			}
			return storageFailure(err)
		}

		if !progress.IsCompleted {
			progress.IsCompleted = true
			progress.IsOpened = true
			if err := tx.Save(&progress).Error; err != nil {
				return storageFailure(err)
			}
		}

		// Open the next video in position order, when there is one.
		var next models.VideoProgress
		err := tx.Where("enrollment_id = ? AND position > ?", enrollment.ID, progress.Position).
			Order("position asc").
			First(&next).Error
		if err == nil {
			if !next.IsOpened {
				next.IsOpened = true
				if err := tx.Save(&next).Error; err != nil {
					return storageFailure(err)
				}
			}
			outcome.UnlockedVideoID = next.VideoID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return storageFailure(err)
		}

		// Gate recomputation: the final exam opens once every progress
		// row is completed. The flag is monotone, never un-set here.
		var remaining int64
		if err := tx.Model(&models.VideoProgress{}).
			Where("enrollment_id = ? AND is_completed = ?", enrollment.ID, false).
			Count(&remaining).Error; err != nil {
			return storageFailure(err)
		}
		if remaining == 0 && !enrollment.CanTakeFinalExam {
			enrollment.CanTakeFinalExam = true
			if err := tx.Save(&enrollment).Error; err != nil {
				return storageFailure(err)
			}
		}
		outcome.ExamUnlocked = enrollment.CanTakeFinalExam

		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// ProgressRecount is the result of re-deriving an enrollment's counters.
type ProgressRecount struct {
	CompletedVideosCount int  `json:"completed_videos_count"`
	TotalVideosCount     int  `json:"total_videos_count"`
	CanTakeFinalExam     bool `json:"can_take_final_exam"`
}

// RecountProgress recounts completed videos for the enrollment and
// recomputes the final exam gate from scratch. The gate stays monotone:
// a recount never takes it back from true.
func RecountProgress(db *gorm.DB, userID, levelID uint) (*ProgressRecount, error) {
	recount := &ProgressRecount{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		if err := lockForUpdate(tx).
			Where("user_id = ? AND level_id = ?", userID, levelID).
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotEnrolled
			}
			return storageFailure(err)
		}

		var completed, total int64
		if err := tx.Model(&models.VideoProgress{}).
			Where("enrollment_id = ? AND is_completed = ?", enrollment.ID, true).
			Count(&completed).Error; err != nil {
			return storageFailure(err)
		}
		if err := tx.Model(&models.VideoProgress{}).
			Where("enrollment_id = ?", enrollment.ID).
			Count(&total).Error; err != nil {
			return storageFailure(err)
		}

		if completed == total && !enrollment.CanTakeFinalExam {
			enrollment.CanTakeFinalExam = true
			if err := tx.Save(&enrollment).Error; err != nil {
				return storageFailure(err)
			}
		}

		recount.CompletedVideosCount = int(completed)
		recount.TotalVideosCount = int(total)
		recount.CanTakeFinalExam = enrollment.CanTakeFinalExam

		return nil
	})
	if err != nil {
		return nil, err
	}

	return recount, nil
}
