package converter

import (
	"encoding/json"

	"github.com/braincast/quiz-service/internal/models"
	"gorm.io/datatypes"
)

// ConvertToDatabaseFormat maps a validated quiz onto the quizzes/questions
// row shapes. It is a pure, total function over already-validated input;
// behavior on an invalid quiz is undefined, so validation is always the
// required predecessor step.
func ConvertToDatabaseFormat(quiz *models.EnhancedQuiz) (*models.QuizRow, []models.QuestionRow) {
	row := &models.QuizRow{
		Title:       quiz.Title,
		Emoji:       defaultStr(quiz.Emoji, "🎮"),
		TimeLimit:   quiz.TimeLimit,
		QuizType:    defaultStr(string(quiz.QuizType), string(models.QuizStandard)),
		Settings:    toJSON(orEmptyMap(quiz.Settings)),
		Tags:        toJSON(orEmptyList(quiz.Tags)),
		Difficulty:  string(quiz.Difficulty),
		ScoringType: string(quiz.ScoringType),
		FlowType:    string(quiz.FlowType),
		IsPublished: true,
	}
	if quiz.Description != "" {
		row.Description = strPtr(quiz.Description)
	}

	questions := make([]models.QuestionRow, len(quiz.Questions))
	for i := range quiz.Questions {
		questions[i] = convertQuestion(&quiz.Questions[i], i)
	}

	return row, questions
}

func convertQuestion(q *models.Question, index int) models.QuestionRow {
	row := models.QuestionRow{
		Text:         q.Text,
		QuestionType: string(q.Type),
		OrderIndex:   index,
		Points:       defaultInt(q.Points, 10),
		Hint:         optionalStr(q.Hint),
		Explanation:  optionalStr(q.Explanation),
		Tags:         toJSON(orEmptyList(q.Tags)),
	}

	if len(q.Settings) > 0 {
		row.Settings = toJSON(q.Settings)
	}
	if q.Media != nil {
		row.Media = toJSON(q.Media)
	}
	if q.Validation != nil {
		row.Validation = toJSON(q.Validation)
	}

	// Exactly one field group per question type, matching the questions
	// table contract.
	switch q.Type {
	case models.MultipleChoice, models.ImageChoice, models.Audio:
		row.Options = toJSON(NormalizeOptions(q.Options))
		row.CorrectAnswer = toJSON(q.CorrectAnswer.Value())

	case models.FillBlank:
		if len(q.CorrectAnswers) > 0 {
			row.CorrectAnswers = toJSON(q.CorrectAnswers)
		} else {
			row.CorrectAnswer = toJSON(q.CorrectAnswer.Value())
		}

	case models.MapClick:
		if coord, ok := q.CorrectAnswer.Coordinate(); ok {
			row.MapCoordinates = toJSON(coord)
		} else {
			// Validation is permissive here, so a non-coordinate value can
			// reach conversion; it is stored verbatim.
			row.MapCoordinates = toJSON(q.CorrectAnswer.Value())
		}

	case models.Matching, models.Categorize:
		if len(q.Options) > 0 {
			row.Options = toJSON(NormalizeOptions(q.Options))
		}
		row.CorrectAnswer = toJSON(q.CorrectAnswer.Value())

	case models.Ordering, models.Timeline:
		row.Options = toJSON(NormalizeOptions(q.Options))
		row.CorrectAnswer = toJSON(q.CorrectAnswer.Value())

	case models.List:
		row.CorrectAnswers = toJSON(q.CorrectAnswers)
	}

	return row
}

// NormalizeOptions flattens options in the richer {id,text} object form to a
// plain string sequence; options already in plain-string form pass through
// unchanged.
func NormalizeOptions(options models.OptionList) []string {
	return options.Texts()
}

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func orEmptyList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func orEmptyMap(settings models.Settings) models.Settings {
	if settings == nil {
		return models.Settings{}
	}
	return settings
}

func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return strPtr(s)
}

func strPtr(s string) *string { return &s }

func defaultStr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
