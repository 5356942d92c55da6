package levelController

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingua/database"
	"lingua/middleware"
	"lingua/models"
	levelValidator "lingua/validators/level"
)

// CreateLevel creates a level (admin only).
func CreateLevel(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateLevel").(*levelValidator.CreateLevelRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	level := models.Level{
		Name:                reqData.Name,
		Description:         reqData.Description,
		WelcomeVideoURL:     reqData.WelcomeVideoURL,
		ImageURL:            reqData.ImageURL,
		Price:               *reqData.Price,
		InitialExamQuestion: reqData.InitialExamQuestion,
		FinalExamQuestion:   reqData.FinalExamQuestion,
	}

	if err := database.Database.Db.Create(&level).Error; err != nil {
		log.Printf("Error creating level: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create level!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Level created successfully!", level)
}

// UpdateLevel edits level metadata (admin only).
func UpdateLevel(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(uint)

	reqData, ok := c.Locals("validatedUpdateLevel").(*levelValidator.UpdateLevelRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var level models.Level
	if err := database.Database.Db.First(&level, levelID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	if reqData.Name != nil {
		level.Name = *reqData.Name
	}
	if reqData.Description != nil {
		level.Description = *reqData.Description
	}
	if reqData.WelcomeVideoURL != nil {
		level.WelcomeVideoURL = *reqData.WelcomeVideoURL
	}
	if reqData.ImageURL != nil {
		level.ImageURL = *reqData.ImageURL
	}
	if reqData.Price != nil {
		level.Price = *reqData.Price
	}
	if reqData.InitialExamQuestion != nil {
		level.InitialExamQuestion = *reqData.InitialExamQuestion
	}
	if reqData.FinalExamQuestion != nil {
		level.FinalExamQuestion = *reqData.FinalExamQuestion
	}

	if err := database.Database.Db.Save(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update level!", nil)
	}

	database.Database.Db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc, id asc")
	}).First(&level, level.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Level updated successfully!", level)
}

// DeleteLevel removes a level together with its videos, enrollments and
// progress rows, in one transaction (admin only).
func DeleteLevel(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(uint)

	var level models.Level
	if err := database.Database.Db.First(&level, levelID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var enrollmentIDs []uint
		if err := tx.Model(&models.Enrollment{}).
			Where("level_id = ?", levelID).
			Pluck("id", &enrollmentIDs).Error; err != nil {
			return err
		}

		if len(enrollmentIDs) > 0 {
			if err := tx.Where("enrollment_id IN ?", enrollmentIDs).
				Delete(&models.VideoProgress{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("level_id = ?", levelID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("level_id = ?", levelID).Delete(&models.Video{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Level{}, levelID).Error
	})
	if err != nil {
		log.Printf("Error deleting level %d: %v", levelID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete level!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Level deleted successfully!", nil)
}

// AddVideo appends a video to a level (admin only). Without an explicit
// order index the video goes to the end of the sequence.
func AddVideo(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(uint)

	var level models.Level
	if err := database.Database.Db.First(&level, levelID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	reqData, ok := c.Locals("validatedVideo").(*levelValidator.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	questions, err := json.Marshal(reqData.Questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid questions!", nil)
	}

	orderIndex := 0
	if reqData.OrderIndex != nil {
		orderIndex = *reqData.OrderIndex
	} else {
		var count int64
		database.Database.Db.Model(&models.Video{}).Where("level_id = ?", levelID).Count(&count)
		orderIndex = int(count)
	}

	video := models.Video{
		LevelID:     levelID,
		YoutubeLink: reqData.YoutubeLink,
		Questions:   questions,
		OrderIndex:  orderIndex,
	}

	if err := database.Database.Db.Create(&video).Error; err != nil {
		log.Printf("Error creating video: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video added successfully!", video)
}

// UpdateVideo edits a video (admin only).
func UpdateVideo(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)

	var video models.Video
	if err := database.Database.Db.First(&video, videoID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	reqData, ok := c.Locals("validatedVideo").(*levelValidator.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	questions, err := json.Marshal(reqData.Questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid questions!", nil)
	}

	video.YoutubeLink = reqData.YoutubeLink
	video.Questions = questions
	if reqData.OrderIndex != nil {
		video.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", video)
}

// DeleteVideo removes a video and its progress rows in one transaction
// (admin only).
func DeleteVideo(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)

	var video models.Video
	if err := database.Database.Db.First(&video, videoID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", videoID).Delete(&models.VideoProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Video{}, videoID).Error
	})
	if err != nil {
		log.Printf("Error deleting video %d: %v", videoID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}
