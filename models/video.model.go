package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Video belongs to exactly one level. OrderIndex is the explicit ordinal
// within the level; rows created before ordinals existed fall back to id
// order through the (order_index, id) sort.
type Video struct {
	gorm.Model
	LevelID     uint           `json:"level_id" gorm:"index;not null"`
	YoutubeLink string         `json:"youtube_link"`
	Questions   datatypes.JSON `json:"questions"`
	OrderIndex  int            `json:"order_index" gorm:"index"`
}
