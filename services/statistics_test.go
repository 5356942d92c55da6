package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/models"
)

func TestPlatformStatistics_Empty(t *testing.T) {
	db := setupTestDB(t)

	stats, err := PlatformStatistics(db)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalPurchases)
	assert.Equal(t, 0.0, stats.CompletionRate, "no purchases means a zero rate, not a fault")
	assert.Empty(t, stats.PopularLevels)
}

func TestPlatformStatistics_CountsAndRate(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "admin", models.RoleAdmin)
	alice := createUser(t, db, "alice", models.RoleClient)
	bob := createUser(t, db, "bob", models.RoleClient)
	levelA := createLevelWithVideos(t, db, "a1", 1)
	levelB := createLevelWithVideos(t, db, "a2", 1)

	for _, userID := range []uint{alice.ID, bob.ID} {
		_, err := Enroll(db, userID, levelA.ID)
		require.NoError(t, err)
	}
	_, err := Enroll(db, alice.ID, levelB.ID)
	require.NoError(t, err)

	// Alice finishes levelA.
	_, err = CompleteVideo(db, alice.ID, levelA.ID, levelA.Videos[0].ID)
	require.NoError(t, err)
	_, err = SubmitExam(db, alice.ID, levelA.ID, models.ExamTypeFinal, 9, 1)
	require.NoError(t, err)

	stats, err := PlatformStatistics(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers, "admins are not counted")
	assert.EqualValues(t, 2, stats.TotalLevels)
	assert.EqualValues(t, 3, stats.TotalPurchases)
	assert.EqualValues(t, 1, stats.CompletedLevels)
	assert.InDelta(t, 100.0/3, stats.CompletionRate, 1e-9)

	require.Len(t, stats.PopularLevels, 2)
	assert.Equal(t, levelA.ID, stats.PopularLevels[0].LevelID)
	assert.EqualValues(t, 2, stats.PopularLevels[0].Purchases)
	assert.Equal(t, levelB.ID, stats.PopularLevels[1].LevelID)
}

func TestPlatformStatistics_PopularTieBrokenByLevelID(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice", models.RoleClient)
	bob := createUser(t, db, "bob", models.RoleClient)
	levelA := createLevelWithVideos(t, db, "a1", 1)
	levelB := createLevelWithVideos(t, db, "a2", 1)

	// Both levels end up with one purchase each.
	_, err := Enroll(db, alice.ID, levelB.ID)
	require.NoError(t, err)
	_, err = Enroll(db, bob.ID, levelA.ID)
	require.NoError(t, err)

	stats, err := PlatformStatistics(db)
	require.NoError(t, err)
	require.Len(t, stats.PopularLevels, 2)
	assert.Equal(t, levelA.ID, stats.PopularLevels[0].LevelID, "ties rank by level id ascending")
	assert.Equal(t, levelB.ID, stats.PopularLevels[1].LevelID)
}

func TestUserStatistics_AveragesOverExamLog(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	levelA := createLevelWithVideos(t, db, "a1", 1)
	levelB := createLevelWithVideos(t, db, "a2", 1)

	_, err := Enroll(db, user.ID, levelA.ID)
	require.NoError(t, err)
	_, err = Enroll(db, user.ID, levelB.ID)
	require.NoError(t, err)

	// Two initial attempts: 50 and 70. One final attempt: 90.
	_, err = SubmitExam(db, user.ID, levelA.ID, models.ExamTypeInitial, 5, 5)
	require.NoError(t, err)
	_, err = SubmitExam(db, user.ID, levelB.ID, models.ExamTypeInitial, 7, 3)
	require.NoError(t, err)

	_, err = CompleteVideo(db, user.ID, levelA.ID, levelA.Videos[0].ID)
	require.NoError(t, err)
	_, err = SubmitExam(db, user.ID, levelA.ID, models.ExamTypeFinal, 9, 1)
	require.NoError(t, err)

	stats, err := UserStatistics(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "aliya", stats.UserName)
	assert.EqualValues(t, 2, stats.PurchasedLevels)
	assert.EqualValues(t, 1, stats.CompletedLevels)
	assert.Equal(t, 50.0, stats.CompletionRate)
	assert.Equal(t, 60.0, stats.AverageInitialScore)
	assert.Equal(t, 90.0, stats.AverageFinalScore)
	assert.Equal(t, 30.0, stats.AverageImprovement)
	assert.EqualValues(t, 3, stats.TotalExamsTaken)
}

func TestUserStatistics_EmptyCategoriesAverageZero(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 1)

	_, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	_, err = SubmitExam(db, user.ID, level.ID, models.ExamTypeInitial, 6, 4)
	require.NoError(t, err)

	stats, err := UserStatistics(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 60.0, stats.AverageInitialScore)
	assert.Equal(t, 0.0, stats.AverageFinalScore)
	assert.Equal(t, 0.0, stats.AverageImprovement, "improvement needs both categories")
	assert.EqualValues(t, 1, stats.TotalExamsTaken)
}

func TestUserStatistics_UserNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UserStatistics(db, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
