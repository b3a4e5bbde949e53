package validator

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/braincast/quiz-service/internal/errors"
	"github.com/braincast/quiz-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator is the main validator instance combining struct-tag validation
// with the quiz structural validator.
type Validator struct {
	structValidator *validator.Validate
	quizValidator   *QuizValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
		quizValidator:   NewQuizValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Quiz returns the quiz structural validator
func (v *Validator) Quiz() *QuizValidator {
	return v.quizValidator
}

// ValidateImportBatch runs struct-tag validation (enum fields like quiz_type
// and question type) and then the structural checks over a whole batch. Every
// message carries the quiz's 1-based position; an empty result means the batch
// may proceed to conversion.
func (v *Validator) ValidateImportBatch(quizzes []*models.EnhancedQuiz) []string {
	var errs []string
	for i, quiz := range quizzes {
		if quiz == nil {
			continue
		}
		if err := v.ValidateStruct(quiz); err != nil {
			for _, fieldErr := range apperrors.ToValidationErrors(err) {
				errs = append(errs, fmt.Sprintf("Quiz %d: %s %s", i+1, fieldErr.Field, fieldErr.Message))
			}
		}
	}
	return append(errs, v.quizValidator.ValidateBatch(quizzes)...)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("quiz_type", validateQuizType)
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuizType(fl validator.FieldLevel) bool {
	validTypes := []models.QuizType{
		models.QuizStandard,
		models.QuizGeography,
		models.QuizImageBased,
		models.QuizTimeline,
		models.QuizCategorization,
		models.QuizWordLogic,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateQuestionType(fl validator.FieldLevel) bool {
	validTypes := []models.QuestionType{
		models.MultipleChoice,
		models.ImageChoice,
		models.FillBlank,
		models.MapClick,
		models.Matching,
		models.Categorize,
		models.Ordering,
		models.Timeline,
		models.Audio,
		models.List,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	validLevels := []models.DifficultyLevel{
		models.DifficultyEasy,
		models.DifficultyMedium,
		models.DifficultyHard,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}
