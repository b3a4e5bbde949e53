package validator

import (
	"fmt"

	"github.com/braincast/quiz-service/internal/models"
)

// Result is the outcome of validating a single quiz. Errors are plain,
// display-ready strings in check order.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// QuizValidator checks imported quizzes against the per-question-type
// structural rules. It is pure: no side effects, never panics, and the same
// input always yields the same result.
type QuizValidator struct{}

func NewQuizValidator() *QuizValidator {
	return &QuizValidator{}
}

// Validate collects every violated check rather than stopping at the first,
// so one call reports all problems in a quiz. Question errors are prefixed
// with the question's 1-based position.
func (v *QuizValidator) Validate(quiz *models.EnhancedQuiz) Result {
	var errs []string

	if quiz == nil {
		return Result{Valid: false, Errors: []string{"Quiz is missing"}}
	}

	if quiz.Title == "" {
		errs = append(errs, "Quiz title is required")
	}

	if len(quiz.Questions) == 0 {
		errs = append(errs, "Quiz must have at least one question")
	}

	for i := range quiz.Questions {
		errs = append(errs, v.validateQuestion(i+1, &quiz.Questions[i])...)
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateBatch validates every quiz in a batch, prefixing each error with
// the quiz's 1-based position. An empty result means the whole batch is
// structurally sound.
func (v *QuizValidator) ValidateBatch(quizzes []*models.EnhancedQuiz) []string {
	var errs []string
	for i, quiz := range quizzes {
		result := v.Validate(quiz)
		for _, msg := range result.Errors {
			errs = append(errs, fmt.Sprintf("Quiz %d: %s", i+1, msg))
		}
	}
	return errs
}

func (v *QuizValidator) validateQuestion(num int, q *models.Question) []string {
	var errs []string
	problem := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf("Question %d: %s", num, fmt.Sprintf(format, args...)))
	}

	if q.Text == "" {
		problem("question text is required")
	}
	if q.Type == "" {
		problem("question type is required")
		return errs
	}

	switch q.Type {
	case models.MultipleChoice:
		if len(q.Options) < 2 {
			problem("multiple-choice questions need at least 2 options")
		}
		if q.CorrectAnswer.IsZero() {
			problem("multiple-choice questions need a correct answer")
		}

	case models.ImageChoice:
		if q.Media == nil || q.Media.URL == "" {
			problem("image-choice questions need a media URL")
		}
		if len(q.Options) < 2 {
			problem("image-choice questions need at least 2 options")
		}
		if q.CorrectAnswer.IsZero() {
			problem("image-choice questions need a correct answer")
		}

	case models.FillBlank:
		if q.CorrectAnswer.IsZero() && len(q.CorrectAnswers) == 0 {
			problem("fill-blank questions need a correct answer")
		}

	case models.MapClick:
		if q.Media == nil || q.Media.URL == "" {
			problem("map-click questions need a map image URL")
		}
		// Deliberately permissive: any present answer passes, object-shaped
		// or not, even though conversion reads it as {x,y} coordinates.
		if q.CorrectAnswer.IsZero() {
			problem("map-click questions need target coordinates")
		}

	case models.Matching:
		if _, ok := q.CorrectAnswer.Pairs(); !ok {
			problem("matching questions need a correct answer mapping")
		}

	case models.Categorize:
		if len(q.Options) == 0 {
			problem("categorize questions need items to sort")
		}
		if _, ok := q.CorrectAnswer.Buckets(); !ok {
			problem("categorize questions need a category mapping")
		}

	case models.Ordering:
		if len(q.Options) < 2 {
			problem("ordering questions need at least 2 items")
		}
		if _, ok := q.CorrectAnswer.Sequence(); !ok {
			problem("ordering questions need the correct order")
		}

	case models.Timeline:
		if len(q.Options) < 2 {
			problem("timeline questions need at least 2 events")
		}
		if _, ok := q.CorrectAnswer.Sequence(); !ok {
			problem("timeline questions need the correct order")
		}

	case models.Audio:
		if q.Media == nil || q.Media.URL == "" {
			problem("audio questions need an audio URL")
		} else if q.Media.Type != "audio" {
			problem("audio questions need media of type audio")
		}
		if q.CorrectAnswer.IsZero() {
			problem("audio questions need a correct answer")
		}

	case models.List:
		if len(q.CorrectAnswers) == 0 {
			problem("list questions need at least one correct answer")
		}

	default:
		problem("unsupported question type '%s'", q.Type)
	}

	return errs
}
