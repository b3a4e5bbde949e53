package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/braincast/quiz-service/internal/converter"
	"github.com/braincast/quiz-service/internal/events"
	"github.com/braincast/quiz-service/internal/importer"
	"github.com/braincast/quiz-service/internal/jobs"
	"github.com/braincast/quiz-service/internal/models"
	"github.com/braincast/quiz-service/internal/repositories"
	"github.com/braincast/quiz-service/internal/validator"
	"github.com/google/uuid"
)

// ImportService runs the full import pipeline: parse, validate, convert,
// persist. Parse and validation failures abort the whole batch before any
// write; persistence failures are tallied per quiz without blocking siblings.
type ImportService interface {
	ImportFromFile(ctx context.Context, file io.Reader, filename string, userID string) (*models.ImportSummary, error)
	ImportJSON(ctx context.Context, document string, userID string) (*models.ImportSummary, error)
	ImportCSV(ctx context.Context, text string, userID string) (*models.ImportSummary, error)
	ImportExcel(ctx context.Context, file io.Reader, userID string) (*models.ImportSummary, error)

	GetImportJob(ctx context.Context, jobID string) (*models.ImportJob, error)
}

type importService struct {
	repo      repositories.QuizRepository
	jobs      jobs.Store
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewImportService(
	repo repositories.QuizRepository,
	jobStore jobs.Store,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) ImportService {
	return &importService{
		repo:      repo,
		jobs:      jobStore,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

// ImportFromFile dispatches on the file extension.
func (s *importService) ImportFromFile(ctx context.Context, file io.Reader, filename string, userID string) (*models.ImportSummary, error) {
	s.logger.Info("Starting file import", "filename", filename, "user_id", userID)

	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return s.importJSON(ctx, string(data), filename, userID)
	case ".csv":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return s.importCSV(ctx, string(data), filename, userID)
	case ".xlsx", ".xls":
		return s.importExcel(ctx, file, filename, userID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (s *importService) ImportJSON(ctx context.Context, document string, userID string) (*models.ImportSummary, error) {
	return s.importJSON(ctx, document, "", userID)
}

func (s *importService) ImportCSV(ctx context.Context, text string, userID string) (*models.ImportSummary, error) {
	return s.importCSV(ctx, text, "", userID)
}

func (s *importService) ImportExcel(ctx context.Context, file io.Reader, userID string) (*models.ImportSummary, error) {
	return s.importExcel(ctx, file, "", userID)
}

func (s *importService) GetImportJob(ctx context.Context, jobID string) (*models.ImportJob, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if err == jobs.ErrJobNotFound {
			return nil, ErrImportJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// ===== FORMAT ENTRY POINTS =====

func (s *importService) importJSON(ctx context.Context, document, filename, userID string) (*models.ImportSummary, error) {
	quizzes, err := importer.ParseJSON(document)
	if err != nil {
		// A parse failure aborts the whole import before validation or
		// persistence is attempted.
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}
	return s.importBatch(ctx, quizzes, "json", filename, userID)
}

func (s *importService) importCSV(ctx context.Context, text, filename, userID string) (*models.ImportSummary, error) {
	rows := importer.ParseCSV(text)
	quizzes := importer.GroupByQuizOrdered(rows)
	if len(quizzes) == 0 {
		return nil, ErrEmptyDocument
	}
	return s.importBatch(ctx, quizzes, "csv", filename, userID)
}

func (s *importService) importExcel(ctx context.Context, file io.Reader, filename, userID string) (*models.ImportSummary, error) {
	rows, err := importer.ParseExcel(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}
	quizzes := importer.GroupByQuizOrdered(rows)
	if len(quizzes) == 0 {
		return nil, ErrEmptyDocument
	}
	return s.importBatch(ctx, quizzes, "xlsx", filename, userID)
}

// ===== BATCH PIPELINE =====

func (s *importService) importBatch(ctx context.Context, quizzes []*models.EnhancedQuiz, format, filename, userID string) (*models.ImportSummary, error) {
	if len(quizzes) == 0 {
		return nil, ErrEmptyDocument
	}

	job := &models.ImportJob{
		ID:           uuid.NewString(),
		UserID:       userID,
		FileName:     filename,
		Format:       format,
		Status:       models.ImportProcessing,
		TotalQuizzes: len(quizzes),
		StartedAt:    time.Now().UTC(),
	}
	s.saveJob(ctx, job)

	// Validation collects every problem across the batch; any error aborts
	// persistence entirely. No partial-valid persistence within one call.
	if errs := s.validator.ValidateImportBatch(quizzes); len(errs) > 0 {
		job.Status = models.ImportValidationFailed
		job.ErrorCount = len(errs)
		job.Errors = errs
		s.finishJob(ctx, job)

		s.publishEvent(ctx, events.EventImportFailed, events.ImportFailedEvent{
			JobID:      job.ID,
			Format:     format,
			Reason:     "validation failed",
			ErrorCount: len(errs),
			Errors:     errs,
		})

		s.logger.Info("Import rejected by validation",
			"job_id", job.ID,
			"total_quizzes", len(quizzes),
			"error_count", len(errs))

		return &models.ImportSummary{
			JobID:        job.ID,
			TotalQuizzes: len(quizzes),
			ErrorCount:   len(errs),
			Errors:       errs,
			Status:       models.ImportValidationFailed,
		}, nil
	}

	summary := &models.ImportSummary{
		JobID:        job.ID,
		TotalQuizzes: len(quizzes),
		Status:       models.ImportCompleted,
	}

	// One quiz's persistence failure must not block the rest of the batch.
	for i, quiz := range quizzes {
		// Duplicate titles are legal but worth flagging; the check is
		// best-effort and never blocks the import.
		if exists, err := s.repo.ExistsByTitle(ctx, quiz.Title); err == nil && exists {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("Quiz %d (%s): a quiz with this title already exists", i+1, quiz.Title))
		}

		quizRow, questionRows := converter.ConvertToDatabaseFormat(quiz)

		quizID, err := s.repo.CreateWithQuestions(ctx, quizRow, questionRows)
		if err != nil {
			summary.ErrorCount++
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("Quiz %d (%s): %v", i+1, quiz.Title, err))
			s.logger.Error("Failed to persist quiz",
				"job_id", job.ID,
				"quiz_title", quiz.Title,
				"error", err)
			continue
		}

		summary.SuccessCount++
		summary.CreatedIDs = append(summary.CreatedIDs, quizID)

		s.publishEvent(ctx, events.EventQuizImported, events.QuizImportedEvent{
			QuizID:        quizID,
			QuizTitle:     quiz.Title,
			QuizType:      quizRow.QuizType,
			QuestionCount: len(questionRows),
			ImportJobID:   job.ID,
		})
	}

	job.Status = models.ImportCompleted
	job.SuccessCount = summary.SuccessCount
	job.ErrorCount = summary.ErrorCount
	job.Errors = summary.Errors
	job.Warnings = summary.Warnings
	job.CreatedQuizIDs = summary.CreatedIDs
	s.finishJob(ctx, job)

	s.publishEvent(ctx, events.EventImportCompleted, events.ImportCompletedEvent{
		JobID:        job.ID,
		Format:       format,
		TotalQuizzes: summary.TotalQuizzes,
		SuccessCount: summary.SuccessCount,
		ErrorCount:   summary.ErrorCount,
		CompletedAt:  time.Now().UTC(),
	})

	s.logger.Info("Import completed",
		"job_id", job.ID,
		"total_quizzes", summary.TotalQuizzes,
		"success_count", summary.SuccessCount,
		"error_count", summary.ErrorCount)

	return summary, nil
}

// ===== HELPERS =====

func (s *importService) saveJob(ctx context.Context, job *models.ImportJob) {
	if err := s.jobs.Save(ctx, job); err != nil {
		// Job tracking is best-effort; the import itself proceeds.
		s.logger.Warn("Failed to save import job", "job_id", job.ID, "error", err)
	}
}

func (s *importService) finishJob(ctx context.Context, job *models.ImportJob) {
	now := time.Now().UTC()
	job.CompletedAt = &now
	s.saveJob(ctx, job)
}

func (s *importService) publishEvent(ctx context.Context, eventType events.EventType, data interface{}) {
	event := &events.ImportEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    "quiz-service",
		Version:   "1.0",
		Data:      data,
	}
	if err := s.publisher.PublishImportEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish import event",
			"event_type", eventType, "error", err)
	}
}
