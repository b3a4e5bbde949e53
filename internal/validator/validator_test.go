package validator

import (
	"testing"

	"github.com/braincast/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImportBatch_ValidBatch(t *testing.T) {
	errs := New().ValidateImportBatch([]*models.EnhancedQuiz{validQuiz(), validQuiz()})

	assert.Empty(t, errs)
}

func TestValidateImportBatch_RejectsUnknownQuizType(t *testing.T) {
	quiz := validQuiz()
	quiz.QuizType = models.QuizType("bogus")

	errs := New().ValidateImportBatch([]*models.EnhancedQuiz{quiz})

	require.Len(t, errs, 1)
	assert.Equal(t, "Quiz 1: quiz_type must be a valid quiz type (standard, geography, image-based, timeline, categorization, word-logic)", errs[0])
}

func TestValidateImportBatch_RejectsUnknownDifficulty(t *testing.T) {
	quiz := validQuiz()
	quiz.Difficulty = models.DifficultyLevel("impossible")

	errs := New().ValidateImportBatch([]*models.EnhancedQuiz{quiz})

	require.Len(t, errs, 1)
	assert.Equal(t, "Quiz 1: difficulty must be easy, medium, or hard", errs[0])
}

func TestValidateImportBatch_UnknownQuestionTypeReportedByBothChecks(t *testing.T) {
	quiz := validQuiz()
	quiz.Questions[0].Type = models.QuestionType("essay")

	errs := New().ValidateImportBatch([]*models.EnhancedQuiz{quiz})

	assert.Contains(t, errs, "Quiz 1: type must be a valid question type (multiple-choice, image-choice, fill-blank, map-click, matching, categorize, ordering, timeline, audio, list)")
	assert.Contains(t, errs, "Quiz 1: Question 1: unsupported question type 'essay'")
}

func TestValidateImportBatch_StructAndStructuralErrorsCombined(t *testing.T) {
	quizzes := []*models.EnhancedQuiz{
		validQuiz(),
		{Title: "", QuizType: models.QuizType("bogus")},
	}

	errs := New().ValidateImportBatch(quizzes)

	assert.Contains(t, errs, "Quiz 2: quiz_type must be a valid quiz type (standard, geography, image-based, timeline, categorization, word-logic)")
	assert.Contains(t, errs, "Quiz 2: Quiz title is required")
	assert.Contains(t, errs, "Quiz 2: Quiz must have at least one question")
}

func TestValidateImportBatch_EmptyEnumFieldsAreAllowed(t *testing.T) {
	// CSV grouping fills defaults, but JSON documents may simply omit the
	// enum fields; omitempty keeps that legal.
	quiz := validQuiz()
	quiz.QuizType = ""
	quiz.Difficulty = ""

	errs := New().ValidateImportBatch([]*models.EnhancedQuiz{quiz})

	assert.Empty(t, errs)
}
