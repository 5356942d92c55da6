package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/models"
)

func TestCompleteVideo_OpensNextAndKeepsGateClosed(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 3)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	outcome, err := CompleteVideo(db, user.ID, level.ID, level.Videos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, level.Videos[1].ID, outcome.UnlockedVideoID)
	assert.False(t, outcome.ExamUnlocked)

	rows := progressRows(t, db, enrollment.ID)
	assert.True(t, rows[0].IsCompleted)
	assert.True(t, rows[1].IsOpened)
	assert.False(t, rows[1].IsCompleted)
	assert.False(t, rows[2].IsOpened)

	assert.False(t, reloadEnrollment(t, db, enrollment.ID).CanTakeFinalExam)
}

func TestCompleteVideo_LastVideoUnlocksNothingFurther(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 2)

	_, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	_, err = CompleteVideo(db, user.ID, level.ID, level.Videos[0].ID)
	require.NoError(t, err)

	outcome, err := CompleteVideo(db, user.ID, level.ID, level.Videos[1].ID)
	require.NoError(t, err)
	assert.Zero(t, outcome.UnlockedVideoID)
	assert.True(t, outcome.ExamUnlocked)
}

func TestCompleteVideo_GateOpensOnlyAfterLastVideo(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 3)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	for i, video := range level.Videos {
		outcome, err := CompleteVideo(db, user.ID, level.ID, video.ID)
		require.NoError(t, err)

		isLast := i == len(level.Videos)-1
		assert.Equal(t, isLast, outcome.ExamUnlocked, "video %d", i+1)
		assert.Equal(t, isLast, reloadEnrollment(t, db, enrollment.ID).CanTakeFinalExam)
	}
}

func TestCompleteVideo_GateOpensRegardlessOfCallOrder(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 3)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	// Completing out of order is allowed; the gate derives from the
	// remaining-incomplete count, not the call sequence.
	for _, idx := range []int{2, 0, 1} {
		_, err := CompleteVideo(db, user.ID, level.ID, level.Videos[idx].ID)
		require.NoError(t, err)
	}

	assert.True(t, reloadEnrollment(t, db, enrollment.ID).CanTakeFinalExam)
}

func TestCompleteVideo_IdempotentAndGateMonotone(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 2)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	for _, video := range level.Videos {
		_, err := CompleteVideo(db, user.ID, level.ID, video.ID)
		require.NoError(t, err)
	}
	require.True(t, reloadEnrollment(t, db, enrollment.ID).CanTakeFinalExam)

	// Re-completing an already-completed video stays a no-op and the
	// gate stays open.
	outcome, err := CompleteVideo(db, user.ID, level.ID, level.Videos[0].ID)
	require.NoError(t, err)
	assert.True(t, outcome.ExamUnlocked)
	assert.True(t, reloadEnrollment(t, db, enrollment.ID).CanTakeFinalExam)

	rows := progressRows(t, db, enrollment.ID)
	assert.True(t, rows[0].IsCompleted)
	assert.True(t, rows[1].IsCompleted)
}

func TestCompleteVideo_NotEnrolled(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 2)

	_, err := CompleteVideo(db, user.ID, level.ID, level.Videos[0].ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestCompleteVideo_VideoAddedAfterEnrollmentNotAccessible(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 2)

	enrollment, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	late := &models.Video{LevelID: level.ID, YoutubeLink: "https://youtu.be/late", OrderIndex: 2}
	require.NoError(t, db.Create(late).Error)

	_, err = CompleteVideo(db, user.ID, level.ID, late.ID)
	assert.ErrorIs(t, err, ErrVideoNotAccessible)

	// The late video grew no progress row.
	assert.Len(t, progressRows(t, db, enrollment.ID), 2)
}

func TestRecountProgress_ReturnsCountsAndGate(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)
	level := createLevelWithVideos(t, db, "a1", 3)

	_, err := Enroll(db, user.ID, level.ID)
	require.NoError(t, err)

	_, err = CompleteVideo(db, user.ID, level.ID, level.Videos[0].ID)
	require.NoError(t, err)

	recount, err := RecountProgress(db, user.ID, level.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, recount.CompletedVideosCount)
	assert.Equal(t, 3, recount.TotalVideosCount)
	assert.False(t, recount.CanTakeFinalExam)

	for _, video := range level.Videos[1:] {
		_, err := CompleteVideo(db, user.ID, level.ID, video.ID)
		require.NoError(t, err)
	}

	recount, err = RecountProgress(db, user.ID, level.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, recount.CompletedVideosCount)
	assert.True(t, recount.CanTakeFinalExam)
}

func TestRecountProgress_NotEnrolled(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "aliya", models.RoleClient)

	_, err := RecountProgress(db, user.ID, 42)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}
