package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/models"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 75.0, Percentage(15, 5))
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 100.0, Percentage(10, 0))
	assert.Equal(t, 0.0, Percentage(0, 10))
}

func TestSubmitExam_InitialCachesScore(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 2)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	result, err := SubmitExam(db, user.ID, level.ID, models.ExamTypeInitial, 15, 5)
	require.NoError(t, err)
	assert.Equal(t, 75.0, result.Percentage)

	updated := reloadEnrollment(t, db, enrollment.ID)
	require.NotNil(t, updated.InitialExamScore)
	assert.Equal(t, 75.0, *updated.InitialExamScore)
	assert.Nil(t, updated.FinalExamScore)
	assert.Nil(t, updated.ScoreDifference)
	assert.False(t, updated.IsCompleted)
}

func TestSubmitExam_FinalLockedUntilGate(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 2)

	_, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	_, err = SubmitExam(db, user.ID, level.ID, models.ExamTypeFinal, 18, 2)
	assert.ErrorIs(t, err, ErrFinalExamLocked)

	// No exam row is logged for a rejected attempt.
	var count int64
	require.NoError(t, db.Model(&models.ExamResult{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitExam_FinalCompletesLevelAndDifference(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 2)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	_, err = SubmitExam(db, user.ID, level.ID, models.ExamTypeInitial, 12, 8)
	require.NoError(t, err)

	for _, video := range level.Videos {
		_, err := CompleteVideo(db, user.ID, level.ID, video.ID)
		require.NoError(t, err)
	}

	result, err := SubmitExam(db, user.ID, level.ID, models.ExamTypeFinal, 41, 9)
	require.NoError(t, err)
	assert.Equal(t, 82.0, result.Percentage)

	updated := reloadEnrollment(t, db, enrollment.ID)
	require.NotNil(t, updated.FinalExamScore)
	assert.Equal(t, 82.0, *updated.FinalExamScore)
	require.NotNil(t, updated.ScoreDifference)
	assert.Equal(t, 22.0, *updated.ScoreDifference)
	assert.True(t, updated.IsCompleted)
}

func TestSubmitExam_DifferenceStaysNilWithoutInitial(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 1)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	_, err = CompleteVideo(db, user.ID, level.ID, level.Videos[0].ID)
	require.NoError(t, err)

	_, err = SubmitExam(db, user.ID, level.ID, models.ExamTypeFinal, 18, 2)
	require.NoError(t, err)

	updated := reloadEnrollment(t, db, enrollment.ID)
	require.NotNil(t, updated.FinalExamScore)
	assert.Nil(t, updated.ScoreDifference)
	assert.True(t, updated.IsCompleted)
}

func TestSubmitExam_RepeatsAppendLogOverwriteCache(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 1)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	_, err = SubmitExam(db, user.ID, level.ID, models.ExamTypeInitial, 10, 10)
	require.NoError(t, err)
	_, err = SubmitExam(db, user.ID, level.ID, models.ExamTypeInitial, 15, 5)
	require.NoError(t, err)

	updated := reloadEnrollment(t, db, enrollment.ID)
	require.NotNil(t, updated.InitialExamScore)
	assert.Equal(t, 75.0, *updated.InitialExamScore, "cache reflects the latest attempt")

	history, err := ExamHistory(db, user.ID, level.ID)
	require.NoError(t, err)
	require.Len(t, history, 2, "the log keeps every attempt")
	assert.Equal(t, 50.0, history[0].Percentage)
	assert.Equal(t, 75.0, history[1].Percentage)
}

func TestSubmitExam_Validation(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 1)

	_, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	_, err = SubmitExam(db, user.ID, level.ID, "midterm", 5, 5)
	assert.ErrorIs(t, err, ErrInvalidExamType)

	_, err = SubmitExam(db, user.ID, level.ID, models.ExamTypeInitial, -1, 5)
	assert.ErrorIs(t, err, ErrInvalidExamInput)

	_, err = SubmitExam(db, user.ID, 999, models.ExamTypeInitial, 5, 5)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestSubmitExam_ZeroTotalScoresZero(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 1)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	result, err := SubmitExam(db, user.ID, level.ID, models.ExamTypeInitial, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Percentage)

	updated := reloadEnrollment(t, db, enrollment.ID)
	require.NotNil(t, updated.InitialExamScore)
	assert.Equal(t, 0.0, *updated.InitialExamScore)
}

func TestEndToEnd_ThreeVideoLevel(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 3)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	// Complete video 1: video 2 opens, gate stays closed.
	outcome, err := CompleteVideo(db, user.ID, level.ID, level.Videos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, level.Videos[1].ID, outcome.UnlockedVideoID)
	assert.False(t, outcome.ExamUnlocked)

	// Complete videos 2 and 3: gate opens.
	_, err = CompleteVideo(db, user.ID, level.ID, level.Videos[1].ID)
	require.NoError(t, err)
	outcome, err = CompleteVideo(db, user.ID, level.ID, level.Videos[2].ID)
	require.NoError(t, err)
	assert.True(t, outcome.ExamUnlocked)

	// Final exam succeeds with 90% and completes the level.
	result, err := SubmitExam(db, user.ID, level.ID, models.ExamTypeFinal, 18, 2)
	require.NoError(t, err)
	assert.Equal(t, 90.0, result.Percentage)
	assert.True(t, reloadEnrollment(t, db, enrollment.ID).IsCompleted)
}
