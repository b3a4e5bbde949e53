package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/braincast/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	job := &models.ImportJob{
		ID:           "job-1",
		Format:       "csv",
		Status:       models.ImportProcessing,
		TotalQuizzes: 3,
		StartedAt:    time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, job))

	loaded, err := store.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, job.ID, loaded.ID)
	assert.Equal(t, models.ImportProcessing, loaded.Status)
	assert.Equal(t, 3, loaded.TotalQuizzes)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMemoryStore_SaveCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	job := &models.ImportJob{ID: "job-1", Status: models.ImportProcessing}
	require.NoError(t, store.Save(ctx, job))

	// Mutating the caller's struct after Save must not leak into the store.
	job.Status = models.ImportFailed

	loaded, err := store.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.ImportProcessing, loaded.Status)
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.ImportJob{ID: "job-1", Status: models.ImportProcessing}))
	require.NoError(t, store.Save(ctx, &models.ImportJob{ID: "job-1", Status: models.ImportCompleted, SuccessCount: 2}))

	loaded, err := store.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.ImportCompleted, loaded.Status)
	assert.Equal(t, 2, loaded.SuccessCount)
}
