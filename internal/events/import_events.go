package events

import (
	"time"
)

// EventType represents different types of import events
type EventType string

const (
	EventQuizImported    EventType = "quiz.imported"
	EventImportCompleted EventType = "import.completed"
	EventImportFailed    EventType = "import.failed"
)

// ImportEvent is the base event structure published after import activity
type ImportEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// QuizImportedEvent is published once per successfully persisted quiz.
type QuizImportedEvent struct {
	QuizID        uint   `json:"quiz_id"`
	QuizTitle     string `json:"quiz_title"`
	QuizType      string `json:"quiz_type"`
	QuestionCount int    `json:"question_count"`
	ImportJobID   string `json:"import_job_id,omitempty"`
}

// ImportCompletedEvent is published once per finished batch with the
// aggregate tally.
type ImportCompletedEvent struct {
	JobID        string    `json:"job_id"`
	Format       string    `json:"format"`
	TotalQuizzes int       `json:"total_quizzes"`
	SuccessCount int       `json:"success_count"`
	ErrorCount   int       `json:"error_count"`
	CompletedAt  time.Time `json:"completed_at"`
}

// ImportFailedEvent is published when a batch is rejected before persistence
// (parse or validation failure).
type ImportFailedEvent struct {
	JobID      string   `json:"job_id"`
	Format     string   `json:"format"`
	Reason     string   `json:"reason"`
	ErrorCount int      `json:"error_count"`
	Errors     []string `json:"errors,omitempty"`
}
