package services

import (
	"errors"

	"gorm.io/gorm"

	"lingua/models"
)

// Percentage scores an exam attempt. An attempt with zero words scores
// zero rather than faulting on the division.
func Percentage(correctWords, wrongWords int) float64 {
	total := correctWords + wrongWords
	if total == 0 {
		return 0
	}
	return float64(correctWords) / float64(total) * 100
}

// SubmitExam appends one exam result and refreshes the enrollment's
// cached scores. Initial exams cache the initial score; final exams
// require the gate, cache the final score and difference, and mark the
// level completed. Repeats append to the log and overwrite only the cache.
func SubmitExam(db *gorm.DB, userID, levelID uint, examType string, correctWords, wrongWords int) (*models.ExamResult, error) {
	if examType != models.ExamTypeInitial && examType != models.ExamTypeFinal {
		return nil, ErrInvalidExamType
	}
	if correctWords < 0 || wrongWords < 0 {
		return nil, ErrInvalidExamInput
	}

	var result models.ExamResult

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

		if examType == models.ExamTypeFinal && !enrollment.CanTakeFinalExam {
			return ErrFinalExamLocked
		}

		percentage := Percentage(correctWords, wrongWords)

		result = models.ExamResult{
			UserID:       userID,
			LevelID:      levelID,
			CorrectWords: correctWords,
			WrongWords:   wrongWords,
			Percentage:   percentage,
			Type:         examType,
		}
		if err := tx.Create(&result).Error; err != nil {
			return storageFailure(err)
		}

		switch examType {
		case models.ExamTypeInitial:
			enrollment.InitialExamScore = &percentage
		case models.ExamTypeFinal:
			enrollment.FinalExamScore = &percentage
			if enrollment.InitialExamScore != nil {
				diff := percentage - *enrollment.InitialExamScore
				enrollment.ScoreDifference = &diff
			}
			// Passing the final exam is what completes a level, not
			// video completion.
			enrollment.IsCompleted = true
		}

		if err := tx.Save(&enrollment).Error; err != nil {
			return storageFailure(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ExamHistory lists the user's exam attempts for a level, oldest first.
// The log is append-only; this never mutates anything.
func ExamHistory(db *gorm.DB, userID, levelID uint) ([]models.ExamResult, error) {
	var results []models.ExamResult
	if err := db.Where("user_id = ? AND level_id = ?", userID, levelID).
		Order("id asc").
		Find(&results).Error; err != nil {
		return nil, storageFailure(err)
	}
	return results, nil
}
