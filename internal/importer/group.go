package importer

import (
	"strconv"

	"github.com/braincast/quiz-service/internal/models"
)

// GroupByQuiz folds parsed CSV rows into quizzes keyed by title. The first
// row seen for a title establishes the quiz metadata; every row with a
// non-empty question cell appends one question. Row order is authoritative
// for question order. Rows without a title are skipped.
func GroupByQuiz(rows []Row) map[string]*models.EnhancedQuiz {
	quizzes := make(map[string]*models.EnhancedQuiz)
	for _, quiz := range GroupByQuizOrdered(rows) {
		quizzes[quiz.Title] = quiz
	}
	return quizzes
}

// GroupByQuizOrdered is GroupByQuiz preserving first-appearance order of the
// quiz titles, which keeps batch error prefixes and insert order stable.
func GroupByQuizOrdered(rows []Row) []*models.EnhancedQuiz {
	var ordered []*models.EnhancedQuiz
	byTitle := make(map[string]*models.EnhancedQuiz)

	for _, row := range rows {
		title := row.str("title")
		if title == "" {
			continue
		}

		quiz, ok := byTitle[title]
		if !ok {
			quiz = quizFromRow(title, row)
			byTitle[title] = quiz
			ordered = append(ordered, quiz)
		}

		if row.str("question") != "" {
			quiz.Questions = append(quiz.Questions, questionFromRow(row))
		}
	}

	return ordered
}

func quizFromRow(title string, row Row) *models.EnhancedQuiz {
	quiz := &models.EnhancedQuiz{
		Title:       title,
		Description: row.str("description"),
		Emoji:       row.str("emoji"),
		TimeLimit:   intCell(row, "time_limit", 60),
		QuizType:    models.QuizType(defaultStr(row.str("quiz_type"), string(models.QuizStandard))),
		Difficulty:  models.DifficultyLevel(defaultStr(row.str("difficulty"), string(models.DifficultyMedium))),
		ScoringType: models.ScoringType(defaultStr(row.str("scoring_type"), string(models.ScoringStandard))),
		FlowType:    models.FlowType(defaultStr(row.str("flow_type"), string(models.FlowSequential))),
		Tags:        cleanList(row.strs("quiz_tags")),
	}

	if settings := row.object("settings"); settings != nil {
		quiz.Settings = models.Settings(settings)
	}

	return quiz
}

func questionFromRow(row Row) models.Question {
	q := models.Question{
		Text:        row.str("question"),
		Type:        models.QuestionType(defaultStr(row.str("question_type"), string(models.MultipleChoice))),
		Points:      intCell(row, "points", 10),
		Hint:        row.str("hint"),
		Explanation: row.str("explanation"),
		Tags:        cleanList(row.strs("tags")),
	}

	if row.has("options") {
		if opts := optionsFromCell(row["options"]); len(opts) > 0 {
			q.Options = opts
		}
	}

	if row.has("correct_answer") {
		q.CorrectAnswer = models.AnswerFromValue(row["correct_answer"])
	}

	if answers := cleanList(row.strs("correct_answers")); len(answers) > 0 {
		q.CorrectAnswers = answers
	}

	if url := row.str("media_url"); url != "" {
		q.Media = &models.Media{
			URL:  url,
			Type: row.str("media_type"),
			Alt:  row.str("media_alt"),
		}
	}

	if vtype := row.str("validation_type"); vtype != "" {
		rule := &models.ValidationRule{
			Type:             vtype,
			AlternateAnswers: cleanList(row.strs("alternate_answers")),
		}
		if raw := row.str("validation_threshold"); raw != "" {
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				rule.Threshold = &f
			}
		}
		q.Validation = rule
	}

	return q
}

// optionsFromCell accepts the pipe-split []string form and the JSON array
// form (strings or {id,text} objects).
func optionsFromCell(cell interface{}) models.OptionList {
	switch v := cell.(type) {
	case []string:
		return models.OptionsFromStrings(cleanList(v))
	case []interface{}:
		opts := make(models.OptionList, 0, len(v))
		for _, item := range v {
			switch o := item.(type) {
			case string:
				opts = append(opts, models.Option{Text: o})
			case map[string]interface{}:
				opt := models.Option{}
				if id, ok := o["id"].(string); ok {
					opt.ID = id
				}
				if text, ok := o["text"].(string); ok {
					opt.Text = text
				}
				opts = append(opts, opt)
			}
		}
		return opts
	default:
		return nil
	}
}

func intCell(row Row, key string, fallback int) int {
	raw := row.str(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func defaultStr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// cleanList drops empty entries, which a pipe-split of an empty cell would
// otherwise contribute.
func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
