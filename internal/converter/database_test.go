package converter

import (
	"encoding/json"
	"testing"

	"github.com/braincast/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, data []byte, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, target))
}

func TestConvert_QuizDefaults(t *testing.T) {
	quiz := &models.EnhancedQuiz{
		Title: "Plain Quiz",
		Questions: []models.Question{
			{Text: "Q", Type: models.MultipleChoice, Options: models.OptionsFromStrings([]string{"a", "b"}), CorrectAnswer: models.TextAnswer("a")},
		},
	}

	row, questions := ConvertToDatabaseFormat(quiz)

	assert.Equal(t, "Plain Quiz", row.Title)
	assert.Equal(t, "🎮", row.Emoji)
	assert.Equal(t, "standard", row.QuizType)
	assert.True(t, row.IsPublished)
	assert.Nil(t, row.Description)

	// Absent settings and tags persist as empty containers, not NULL.
	assert.JSONEq(t, `{}`, string(row.Settings))
	assert.JSONEq(t, `[]`, string(row.Tags))

	require.Len(t, questions, 1)
}

func TestConvert_QuizFieldsCarriedThrough(t *testing.T) {
	quiz := &models.EnhancedQuiz{
		Title:       "Full Quiz",
		Description: "All the fields",
		Emoji:       "🧠",
		TimeLimit:   45,
		QuizType:    models.QuizGeography,
		Difficulty:  models.DifficultyHard,
		ScoringType: models.ScoringTimed,
		FlowType:    models.FlowFreeform,
		Tags:        []string{"geo"},
		Settings:    models.Settings{"shuffle": true},
	}

	row, _ := ConvertToDatabaseFormat(quiz)

	require.NotNil(t, row.Description)
	assert.Equal(t, "All the fields", *row.Description)
	assert.Equal(t, "🧠", row.Emoji)
	assert.Equal(t, 45, row.TimeLimit)
	assert.Equal(t, "geography", row.QuizType)
	assert.Equal(t, "hard", row.Difficulty)
	assert.Equal(t, "timed", row.ScoringType)
	assert.Equal(t, "freeform", row.FlowType)
	assert.JSONEq(t, `["geo"]`, string(row.Tags))
	assert.JSONEq(t, `{"shuffle": true}`, string(row.Settings))
}

func TestConvert_OrderIndexIsZeroBased(t *testing.T) {
	quiz := &models.EnhancedQuiz{
		Title: "Ordered",
		Questions: []models.Question{
			{Text: "first", Type: models.FillBlank, CorrectAnswer: models.TextAnswer("a")},
			{Text: "second", Type: models.FillBlank, CorrectAnswer: models.TextAnswer("b")},
			{Text: "third", Type: models.FillBlank, CorrectAnswer: models.TextAnswer("c")},
		},
	}

	_, questions := ConvertToDatabaseFormat(quiz)

	require.Len(t, questions, 3)
	for i, q := range questions {
		assert.Equal(t, i, q.OrderIndex)
		assert.Equal(t, "fill-blank", q.QuestionType)
	}
}

func TestConvert_MultipleChoiceFields(t *testing.T) {
	q := models.Question{
		Text:          "Pick one",
		Type:          models.MultipleChoice,
		Options:       models.OptionsFromStrings([]string{"a", "b"}),
		CorrectAnswer: models.TextAnswer("b"),
		Hint:          "second one",
	}

	row := convertQuestion(&q, 0)

	var options []string
	decodeJSON(t, row.Options, &options)
	assert.Equal(t, []string{"a", "b"}, options)
	assert.JSONEq(t, `"b"`, string(row.CorrectAnswer))
	assert.Nil(t, row.CorrectAnswers)
	assert.Nil(t, row.MapCoordinates)
	require.NotNil(t, row.Hint)
	assert.Equal(t, "second one", *row.Hint)
	assert.Equal(t, 10, row.Points)
}

func TestConvert_FillBlankPrefersAnswerList(t *testing.T) {
	q := models.Question{
		Text:           "Blank",
		Type:           models.FillBlank,
		CorrectAnswer:  models.TextAnswer("ignored"),
		CorrectAnswers: []string{"one", "two"},
	}

	row := convertQuestion(&q, 0)

	assert.JSONEq(t, `["one", "two"]`, string(row.CorrectAnswers))
	assert.Nil(t, row.CorrectAnswer)
}

func TestConvert_FillBlankSingleAnswer(t *testing.T) {
	q := models.Question{Text: "Blank", Type: models.FillBlank, CorrectAnswer: models.TextAnswer("only")}

	row := convertQuestion(&q, 0)

	assert.JSONEq(t, `"only"`, string(row.CorrectAnswer))
	assert.Nil(t, row.CorrectAnswers)
}

func TestConvert_MapClickCoordinate(t *testing.T) {
	q := models.Question{
		Text:          "Click",
		Type:          models.MapClick,
		Media:         &models.Media{URL: "https://example.com/map.png"},
		CorrectAnswer: models.CoordinateAnswer(models.Coordinate{X: 12.5, Y: 34}),
	}

	row := convertQuestion(&q, 0)

	assert.JSONEq(t, `{"x": 12.5, "y": 34}`, string(row.MapCoordinates))
	assert.Nil(t, row.CorrectAnswer)
	assert.Nil(t, row.Options)
}

func TestConvert_MapClickNonCoordinateStoredVerbatim(t *testing.T) {
	q := models.Question{
		Text:          "Click",
		Type:          models.MapClick,
		Media:         &models.Media{URL: "https://example.com/map.png"},
		CorrectAnswer: models.TextAnswer("the left bit"),
	}

	row := convertQuestion(&q, 0)

	assert.JSONEq(t, `"the left bit"`, string(row.MapCoordinates))
}

func TestConvert_MatchingAndCategorize(t *testing.T) {
	matching := models.Question{
		Text:          "Match",
		Type:          models.Matching,
		CorrectAnswer: models.PairsAnswer(map[string]string{"a": "1"}),
	}
	row := convertQuestion(&matching, 0)
	assert.Nil(t, row.Options)
	assert.JSONEq(t, `{"a": "1"}`, string(row.CorrectAnswer))

	categorize := models.Question{
		Text:          "Sort",
		Type:          models.Categorize,
		Options:       models.OptionsFromStrings([]string{"apple", "leek"}),
		CorrectAnswer: models.BucketsAnswer(map[string][]string{"fruit": {"apple"}, "veg": {"leek"}}),
	}
	row = convertQuestion(&categorize, 1)
	var options []string
	decodeJSON(t, row.Options, &options)
	assert.Equal(t, []string{"apple", "leek"}, options)
	assert.JSONEq(t, `{"fruit": ["apple"], "veg": ["leek"]}`, string(row.CorrectAnswer))
}

func TestConvert_OrderingNormalizesOptionObjects(t *testing.T) {
	q := models.Question{
		Text: "Order",
		Type: models.Ordering,
		Options: models.OptionList{
			{ID: "a", Text: "Alpha"},
			{ID: "b", Text: "Beta"},
		},
		CorrectAnswer: models.SequenceAnswer([]string{"a", "b"}),
	}

	row := convertQuestion(&q, 0)

	var options []string
	decodeJSON(t, row.Options, &options)
	assert.Equal(t, []string{"Alpha", "Beta"}, options)
	assert.JSONEq(t, `["a", "b"]`, string(row.CorrectAnswer))
}

func TestConvert_ListUsesCorrectAnswers(t *testing.T) {
	q := models.Question{Text: "Name some", Type: models.List, CorrectAnswers: []string{"x", "y"}}

	row := convertQuestion(&q, 0)

	assert.JSONEq(t, `["x", "y"]`, string(row.CorrectAnswers))
	assert.Nil(t, row.CorrectAnswer)
	assert.Nil(t, row.Options)
}

func TestConvert_MediaAndValidationSerialized(t *testing.T) {
	threshold := 0.75
	q := models.Question{
		Text:          "Audio",
		Type:          models.Audio,
		Media:         &models.Media{URL: "https://example.com/x.mp3", Type: "audio"},
		CorrectAnswer: models.TextAnswer("cello"),
		Validation: &models.ValidationRule{
			Type:             "fuzzy",
			Threshold:        &threshold,
			AlternateAnswers: []string{"violoncello"},
		},
	}

	row := convertQuestion(&q, 0)

	assert.JSONEq(t, `{"url": "https://example.com/x.mp3", "type": "audio"}`, string(row.Media))
	assert.JSONEq(t, `{"type": "fuzzy", "threshold": 0.75, "alternateAnswers": ["violoncello"]}`, string(row.Validation))
}

func TestConvert_ExplicitPointsKept(t *testing.T) {
	q := models.Question{Text: "Big one", Type: models.FillBlank, CorrectAnswer: models.TextAnswer("a"), Points: 50}

	row := convertQuestion(&q, 0)

	assert.Equal(t, 50, row.Points)
}

func TestNormalizeOptions(t *testing.T) {
	mixed := models.OptionList{
		{ID: "a", Text: "Alpha"},
		{Text: "plain"},
	}

	assert.Equal(t, []string{"Alpha", "plain"}, NormalizeOptions(mixed))
	assert.Equal(t, []string{}, NormalizeOptions(nil))
}
