package levelController

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
)

// VideoView is a video as shown in the catalog. Link and questions are
// hidden until the caller has purchased the level.
type VideoView struct {
	ID          uint     `json:"id"`
	YoutubeLink string   `json:"youtube_link"`
	Questions   []string `json:"questions"`
	IsOpened    bool     `json:"is_opened"`
}

// LevelView is a level merged with the caller's enrollment state.
type LevelView struct {
	ID                  uint        `json:"id"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	WelcomeVideoURL     string      `json:"welcome_video_url"`
	ImageURL            string      `json:"image_url"`
	Price               float64     `json:"price"`
	InitialExamQuestion string      `json:"initial_exam_question"`
	FinalExamQuestion   string      `json:"final_exam_question"`
	VideosCount         int         `json:"videos_count"`
	Videos              []VideoView `json:"videos"`
	IsCompleted         bool        `json:"is_completed"`
	CanTakeFinalExam    bool        `json:"can_take_final_exam"`
}

func decodeQuestions(raw []byte) []string {
	questions := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &questions)
	}
	return questions
}

// buildLevelView merges one level with the user's enrollment, hiding
// video details for unpurchased levels.
func buildLevelView(db *gorm.DB, level models.Level, userID uint) LevelView {
	var videos []models.Video
	db.Where("level_id = ?", level.ID).Order("order_index asc, id asc").Find(&videos)

	view := LevelView{
		ID:                  level.ID,
		Name:                level.Name,
		Description:         level.Description,
		WelcomeVideoURL:     level.WelcomeVideoURL,
		ImageURL:            level.ImageURL,
		Price:               level.Price,
		InitialExamQuestion: level.InitialExamQuestion,
		FinalExamQuestion:   level.FinalExamQuestion,
		VideosCount:         len(videos),
		Videos:              make([]VideoView, 0, len(videos)),
	}

	var enrollment models.Enrollment
	enrolled := db.Where("user_id = ? AND level_id = ?", userID, level.ID).
		First(&enrollment).Error == nil

	if !enrolled {
		// For non-purchased levels, don't show video details
		for _, video := range videos {
			view.Videos = append(view.Videos, VideoView{ID: video.ID, Questions: []string{}})
		}
		return view
	}

	view.IsCompleted = enrollment.IsCompleted
	view.CanTakeFinalExam = enrollment.CanTakeFinalExam

	for _, video := range videos {
		videoView := VideoView{
			ID:          video.ID,
			YoutubeLink: video.YoutubeLink,
			Questions:   decodeQuestions(video.Questions),
		}

		var progress models.VideoProgress
		if db.Where("enrollment_id = ? AND video_id = ?", enrollment.ID, video.ID).
			First(&progress).Error == nil {
			videoView.IsOpened = progress.IsOpened
		}

		view.Videos = append(view.Videos, videoView)
	}

	return view
}

// GetLevels lists the catalog merged with the caller's enrollment state.
func GetLevels(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var levels []models.Level
	if err := db.Order("id asc").Find(&levels).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch levels!", nil)
	}

	result := make([]LevelView, 0, len(levels))
	for _, level := range levels {
		result = append(result, buildLevelView(db, level, userID))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Levels fetched successfully!", result)
}

// GetLevel returns one level merged with the caller's enrollment state.
func GetLevel(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	levelID := c.Locals("levelID").(uint)

	db := database.Database.Db

	var level models.Level
	if err := db.First(&level, levelID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Level fetched successfully!", buildLevelView(db, level, userID))
}
