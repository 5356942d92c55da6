package models

import "gorm.io/gorm"

// Level is a purchasable course unit. Videos are ordered by
// (order_index, id); the engine only reads that order.
type Level struct {
	gorm.Model
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	WelcomeVideoURL     string  `json:"welcome_video_url"`
	ImageURL            string  `json:"image_url"`
	Price               float64 `json:"price"`
	InitialExamQuestion string  `json:"initial_exam_question"`
	FinalExamQuestion   string  `json:"final_exam_question"`
	Videos              []Video `json:"videos,omitempty" gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE"`
}
