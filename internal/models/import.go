package models

import "time"

type ImportJobStatus string

const (
	ImportPending          ImportJobStatus = "pending"
	ImportProcessing       ImportJobStatus = "processing"
	ImportCompleted        ImportJobStatus = "completed"
	ImportFailed           ImportJobStatus = "failed"
	ImportValidationFailed ImportJobStatus = "validation_failed"
)

// ImportJob is the tracked state of one import request, stored in Redis and
// queryable by ID while the TTL lasts.
type ImportJob struct {
	ID       string `json:"id"` // UUID
	UserID   string `json:"user_id,omitempty"`
	FileName string `json:"file_name,omitempty"`
	Format   string `json:"format"` // json, csv, xlsx

	Status ImportJobStatus `json:"status"`

	TotalQuizzes int      `json:"total_quizzes"`
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`

	CreatedQuizIDs []uint `json:"created_quiz_ids,omitempty"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ImportSummary is the caller-facing outcome of a batch import. Validation
// errors abort the batch wholesale; persistence errors are tallied per quiz
// without blocking siblings. Warnings never block anything; they flag things
// like duplicate titles the caller may want to clean up.
type ImportSummary struct {
	JobID        string          `json:"job_id,omitempty"`
	TotalQuizzes int             `json:"total_quizzes"`
	SuccessCount int             `json:"success_count"`
	ErrorCount   int             `json:"error_count"`
	Errors       []string        `json:"errors,omitempty"`
	Warnings     []string        `json:"warnings,omitempty"`
	CreatedIDs   []uint          `json:"created_quiz_ids,omitempty"`
	Status       ImportJobStatus `json:"status"`
}
