package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/braincast/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizFixture() (QuizService, *MockQuizRepository) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	repo := new(MockQuizRepository)
	return NewQuizService(repo, logger), repo
}

func TestQuizService_GetByID(t *testing.T) {
	service, repo := newQuizFixture()
	repo.On("GetByID", mock.Anything, uint(5)).Return(&models.QuizRow{Title: "Found"}, nil)

	quiz, err := service.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Found", quiz.Title)
}

func TestQuizService_GetByID_NotFound(t *testing.T) {
	service, repo := newQuizFixture()
	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuizNotFound)
	assert.True(t, IsNotFound(err))
}

func TestQuizService_Delete_ChecksExistenceFirst(t *testing.T) {
	service, repo := newQuizFixture()
	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	err := service.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrQuizNotFound)
	repo.AssertNotCalled(t, "Delete")
}

func TestQuizService_Delete(t *testing.T) {
	service, repo := newQuizFixture()
	repo.On("GetByID", mock.Anything, uint(5)).Return(&models.QuizRow{Title: "Doomed"}, nil)
	repo.On("Delete", mock.Anything, uint(5)).Return(nil)

	err := service.Delete(context.Background(), 5)

	require.NoError(t, err)
	repo.AssertCalled(t, "Delete", mock.Anything, uint(5))
}

func TestQuizService_Delete_RepositoryFailure(t *testing.T) {
	service, repo := newQuizFixture()
	repo.On("GetByID", mock.Anything, uint(5)).Return(&models.QuizRow{}, nil)
	repo.On("Delete", mock.Anything, uint(5)).Return(errors.New("connection reset"))

	err := service.Delete(context.Background(), 5)

	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}
