package models

import "gorm.io/gorm"

const (
	ExamTypeInitial = "initial"
	ExamTypeFinal   = "final"
)

// ExamResult is an append-only log entry for one exam attempt. Rows are
// never updated or deleted; CreatedAt is the attempt timestamp.
type ExamResult struct {
	gorm.Model
	UserID       uint    `json:"user_id" gorm:"index;not null"`
	LevelID      uint    `json:"level_id" gorm:"index;not null"`
	CorrectWords int     `json:"correct_words"`
	WrongWords   int     `json:"wrong_words"`
	Percentage   float64 `json:"percentage"`
	Type         string  `json:"type" gorm:"index;not null"`
}
