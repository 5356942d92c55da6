package models

import "gorm.io/gorm"

// VideoProgress is the per-video unlock/completion state within one
// enrollment. Position is copied from the video's ordinal at purchase
// time, so later catalog edits cannot reorder an in-progress enrollment.
// Invariant: is_completed implies is_opened.
type VideoProgress struct {
	gorm.Model
	EnrollmentID uint       `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_video"`
	VideoID      uint       `json:"video_id" gorm:"not null;uniqueIndex:idx_enrollment_video"`
	Position     int        `json:"position"`
	IsOpened     bool       `json:"is_opened" gorm:"default:false"`
	IsCompleted  bool       `json:"is_completed" gorm:"default:false"`
	Enrollment   Enrollment `json:"-" gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE"`
	Video        Video      `json:"-" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}
