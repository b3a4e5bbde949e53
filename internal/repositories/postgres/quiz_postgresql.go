package postgres

import (
	"context"
	"fmt"

	"github.com/braincast/quiz-service/internal/models"
	"github.com/braincast/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{db: db}
}

// CreateWithQuestions inserts the quiz and its questions atomically. The quiz
// row goes first so the generated ID can be stamped onto each question row.
func (r *QuizPostgreSQL) CreateWithQuestions(ctx context.Context, quiz *models.QuizRow, questions []models.QuestionRow) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}

		if len(questions) == 0 {
			return nil
		}

		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("failed to create questions: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return quiz.ID, nil
}

func (r *QuizPostgreSQL) GetByID(ctx context.Context, id uint) (*models.QuizRow, error) {
	var quiz models.QuizRow
	if err := r.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizPostgreSQL) GetByIDWithQuestions(ctx context.Context, id uint) (*models.QuizRow, error) {
	var quiz models.QuizRow
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// sortColumns whitelists the columns List may order by. Sort parameters come
// in from query strings, so anything outside this set must never reach SQL.
var sortColumns = map[string]bool{
	"created_at": true,
	"title":      true,
}

func sortClause(filters repositories.QuizFilters) string {
	sortBy := filters.SortBy
	if !sortColumns[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := filters.SortOrder
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	return sortBy + " " + sortOrder
}

func (r *QuizPostgreSQL) List(ctx context.Context, filters repositories.QuizFilters) ([]*models.QuizRow, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.QuizRow{})

	if filters.QuizType != nil {
		query = query.Where("quiz_type = ?", *filters.QuizType)
	}
	if filters.Difficulty != nil {
		query = query.Where("difficulty = ?", *filters.Difficulty)
	}
	if filters.Published != nil {
		query = query.Where("is_published = ?", *filters.Published)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quizzes: %w", err)
	}

	query = query.Order(sortClause(filters))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var quizzes []*models.QuizRow
	if err := query.Find(&quizzes).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list quizzes: %w", err)
	}

	return quizzes, total, nil
}

func (r *QuizPostgreSQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&models.QuestionRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete questions: %w", err)
		}
		if err := tx.Delete(&models.QuizRow{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete quiz: %w", err)
		}
		return nil
	})
}

func (r *QuizPostgreSQL) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.QuizRow{}).
		Where("title = ?", title).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}
	return count > 0, nil
}
