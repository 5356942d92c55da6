package models

import "gorm.io/gorm"

// Enrollment records one user's purchase of one level. The score fields
// and both flags are caches of the latest engine transitions; the exam
// result log is the source of truth for scores.
type Enrollment struct {
	gorm.Model
	UserID           uint     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_level"`
	LevelID          uint     `json:"level_id" gorm:"not null;uniqueIndex:idx_user_level"`
	IsCompleted      bool     `json:"is_completed" gorm:"default:false"`
	CanTakeFinalExam bool     `json:"can_take_final_exam" gorm:"default:false"`
	InitialExamScore *float64 `json:"initial_exam_score"`
	FinalExamScore   *float64 `json:"final_exam_score"`
	ScoreDifference  *float64 `json:"score_difference"`
	User             User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Level            Level    `json:"-" gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE"`
}
