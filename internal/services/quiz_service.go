package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/braincast/quiz-service/internal/models"
	"github.com/braincast/quiz-service/internal/repositories"
)

// QuizService exposes read and delete operations over imported quizzes.
type QuizService interface {
	GetByID(ctx context.Context, id uint) (*models.QuizRow, error)
	GetByIDWithQuestions(ctx context.Context, id uint) (*models.QuizRow, error)
	List(ctx context.Context, filters repositories.QuizFilters) ([]*models.QuizRow, int64, error)
	Delete(ctx context.Context, id uint) error
}

type quizService struct {
	repo   repositories.QuizRepository
	logger *slog.Logger
}

func NewQuizService(repo repositories.QuizRepository, logger *slog.Logger) QuizService {
	return &quizService{repo: repo, logger: logger}
}

func (s *quizService) GetByID(ctx context.Context, id uint) (*models.QuizRow, error) {
	quiz, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz %d: %w", id, err)
	}
	return quiz, nil
}

func (s *quizService) GetByIDWithQuestions(ctx context.Context, id uint) (*models.QuizRow, error) {
	quiz, err := s.repo.GetByIDWithQuestions(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz %d: %w", id, err)
	}
	return quiz, nil
}

func (s *quizService) List(ctx context.Context, filters repositories.QuizFilters) ([]*models.QuizRow, int64, error) {
	return s.repo.List(ctx, filters)
}

func (s *quizService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quiz %d: %w", id, err)
	}
	s.logger.Info("Deleted quiz", "quiz_id", id)
	return nil
}
