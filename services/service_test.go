package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lingua/models"
)

// setupTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps the one in-memory instance alive.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Level{},
		&models.Video{},
		&models.Enrollment{},
		&models.VideoProgress{},
		&models.ExamResult{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, name, role string) *models.User {
	t.Helper()

	user := &models.User{
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", name),
		Role:  role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createLevelWithVideos creates a level with videoCount videos ordered by
// their explicit ordinal.
func createLevelWithVideos(t *testing.T, db *gorm.DB, name string, videoCount int) *models.Level {
	t.Helper()

	level := &models.Level{
		Name:                name,
		Price:               49.99,
		InitialExamQuestion: "Read the word list aloud.",
		FinalExamQuestion:   "Read the word list aloud again.",
	}
	require.NoError(t, db.Create(level).Error)

	for i := 0; i < videoCount; i++ {
		video := &models.Video{
			LevelID:     level.ID,
			YoutubeLink: fmt.Sprintf("https://youtu.be/%s-%d", name, i+1),
			OrderIndex:  i,
		}
		require.NoError(t, db.Create(video).Error)
	}

	require.NoError(t, db.Preload("Videos").First(level, level.ID).Error)
	return level
}

func progressRows(t *testing.T, db *gorm.DB, enrollmentID uint) []models.VideoProgress {
	t.Helper()

	var rows []models.VideoProgress
	require.NoError(t, db.Where("enrollment_id = ?", enrollmentID).
		Order("position asc").Find(&rows).Error)
	return rows
}

func reloadEnrollment(t *testing.T, db *gorm.DB, id uint) *models.Enrollment {
	t.Helper()

	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, id).Error)
	return &enrollment
}
