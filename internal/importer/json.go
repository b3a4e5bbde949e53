package importer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/braincast/quiz-service/internal/models"
)

// ParseJSON decodes a quiz document: either a single quiz object or an array
// of quiz objects. A single object is wrapped into a one-element batch. A
// parse failure is a reportable error, never silently swallowed.
func ParseJSON(text string) ([]*models.EnhancedQuiz, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("empty document")
	}

	if strings.HasPrefix(trimmed, "[") {
		var quizzes []*models.EnhancedQuiz
		if err := json.Unmarshal([]byte(trimmed), &quizzes); err != nil {
			return nil, fmt.Errorf("invalid JSON document: %w", err)
		}
		return quizzes, nil
	}

	var quiz models.EnhancedQuiz
	if err := json.Unmarshal([]byte(trimmed), &quiz); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	return []*models.EnhancedQuiz{&quiz}, nil
}
