package repositories

import (
	"context"
	"errors"

	"github.com/braincast/quiz-service/internal/models"
	"gorm.io/gorm"
)

// QuizRepository persists imported quizzes and their questions.
type QuizRepository interface {
	// CreateWithQuestions inserts the quiz row, then its question rows
	// referencing the generated quiz ID, in one transaction. Returns the
	// new quiz ID.
	CreateWithQuestions(ctx context.Context, quiz *models.QuizRow, questions []models.QuestionRow) (uint, error)

	GetByID(ctx context.Context, id uint) (*models.QuizRow, error)
	GetByIDWithQuestions(ctx context.Context, id uint) (*models.QuizRow, error)
	List(ctx context.Context, filters QuizFilters) ([]*models.QuizRow, int64, error)
	Delete(ctx context.Context, id uint) error

	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

// IsNotFoundError reports whether err is the driver's record-not-found.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// QuizFilters narrows List queries.
type QuizFilters struct {
	QuizType   *string `json:"quiz_type"`
	Difficulty *string `json:"difficulty"`
	Published  *bool   `json:"published"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
	SortBy     string  `json:"sort_by"`    // "created_at", "title"
	SortOrder  string  `json:"sort_order"` // "asc", "desc"
}
