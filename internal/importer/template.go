package importer

import (
	"encoding/json"
	"fmt"

	"github.com/braincast/quiz-service/internal/models"
)

// GenerateTemplate returns a hand-authored example quiz for the given quiz
// type, used to seed the import editor with a well-formed starting document.
// Unrecognized types fall back to the standard template. Always succeeds.
func GenerateTemplate(quizType models.QuizType) *models.EnhancedQuiz {
	switch quizType {
	case models.QuizGeography:
		return geographyTemplate()
	case models.QuizImageBased:
		return imageBasedTemplate()
	case models.QuizTimeline:
		return timelineTemplate()
	case models.QuizCategorization:
		return categorizationTemplate()
	case models.QuizWordLogic:
		return wordLogicTemplate()
	default:
		return standardTemplate()
	}
}

// TemplateFilename is the download name for a serialized template.
func TemplateFilename(quizType models.QuizType) string {
	if quizType == "" {
		quizType = models.QuizStandard
	}
	return fmt.Sprintf("%s-quiz-template.json", quizType)
}

// TemplateJSON serializes a template as the pretty-printed JSON offered for
// file download.
func TemplateJSON(quiz *models.EnhancedQuiz) ([]byte, error) {
	return json.MarshalIndent(quiz, "", "  ")
}

func standardTemplate() *models.EnhancedQuiz {
	return &models.EnhancedQuiz{
		Title:       "General Knowledge Starter",
		Description: "A mixed bag of classic trivia to get you going.",
		Emoji:       "🎲",
		TimeLimit:   60,
		QuizType:    models.QuizStandard,
		Difficulty:  models.DifficultyMedium,
		ScoringType: models.ScoringStandard,
		FlowType:    models.FlowSequential,
		Tags:        []string{"trivia", "starter"},
		Questions: []models.Question{
			{
				Text:          "Which planet is known as the Red Planet?",
				Type:          models.MultipleChoice,
				Options:       models.OptionsFromStrings([]string{"Venus", "Mars", "Jupiter", "Mercury"}),
				CorrectAnswer: models.TextAnswer("Mars"),
				Explanation:   "Iron oxide on its surface gives Mars its color.",
			},
			{
				Text:          "The chemical symbol for gold is ____.",
				Type:          models.FillBlank,
				CorrectAnswer: models.TextAnswer("Au"),
				Hint:          "From the Latin aurum.",
			},
			{
				Text:           "Name any three primary colors of light.",
				Type:           models.List,
				CorrectAnswers: []string{"red", "green", "blue"},
			},
		},
	}
}

func geographyTemplate() *models.EnhancedQuiz {
	return &models.EnhancedQuiz{
		Title:       "World Geography Challenge",
		Description: "Find places on the map and match capitals to countries.",
		Emoji:       "🌍",
		TimeLimit:   90,
		QuizType:    models.QuizGeography,
		Difficulty:  models.DifficultyMedium,
		ScoringType: models.ScoringStandard,
		FlowType:    models.FlowSequential,
		Tags:        []string{"geography", "maps"},
		Questions: []models.Question{
			{
				Text:          "Click on Paris.",
				Type:          models.MapClick,
				Media:         &models.Media{URL: "https://example.com/maps/europe.png", Type: "image", Alt: "Map of Europe"},
				CorrectAnswer: models.CoordinateAnswer(models.Coordinate{X: 48.2, Y: 16.4}),
			},
			{
				Text:          "Which is the longest river in the world?",
				Type:          models.MultipleChoice,
				Options:       models.OptionsFromStrings([]string{"Amazon", "Nile", "Yangtze", "Mississippi"}),
				CorrectAnswer: models.TextAnswer("Nile"),
			},
			{
				Text:    "Match each country to its capital.",
				Type:    models.Matching,
				Options: models.OptionsFromStrings([]string{"Japan", "Kenya", "Peru"}),
				CorrectAnswer: models.PairsAnswer(map[string]string{
					"Japan": "Tokyo",
					"Kenya": "Nairobi",
					"Peru":  "Lima",
				}),
			},
		},
	}
}

func imageBasedTemplate() *models.EnhancedQuiz {
	return &models.EnhancedQuiz{
		Title:       "Sights and Sounds",
		Description: "Identify what you see and hear.",
		Emoji:       "📸",
		TimeLimit:   75,
		QuizType:    models.QuizImageBased,
		Difficulty:  models.DifficultyEasy,
		ScoringType: models.ScoringStandard,
		FlowType:    models.FlowSequential,
		Tags:        []string{"images", "audio"},
		Questions: []models.Question{
			{
				Text:          "Which landmark is shown in the photo?",
				Type:          models.ImageChoice,
				Media:         &models.Media{URL: "https://example.com/photos/landmark.jpg", Type: "image", Alt: "A famous landmark"},
				Options:       models.OptionsFromStrings([]string{"Eiffel Tower", "Big Ben", "Colosseum", "Sagrada Familia"}),
				CorrectAnswer: models.TextAnswer("Colosseum"),
			},
			{
				Text:          "Which instrument is playing?",
				Type:          models.Audio,
				Media:         &models.Media{URL: "https://example.com/audio/instrument.mp3", Type: "audio"},
				CorrectAnswer: models.TextAnswer("cello"),
			},
			{
				Text:          "Roughly when was color photography invented?",
				Type:          models.MultipleChoice,
				Options:       models.OptionsFromStrings([]string{"1860s", "1900s", "1930s", "1950s"}),
				CorrectAnswer: models.TextAnswer("1860s"),
			},
		},
	}
}

func timelineTemplate() *models.EnhancedQuiz {
	return &models.EnhancedQuiz{
		Title:       "History in Order",
		Description: "Put events and steps into their correct sequence.",
		Emoji:       "⏳",
		TimeLimit:   120,
		QuizType:    models.QuizTimeline,
		Difficulty:  models.DifficultyHard,
		ScoringType: models.ScoringStandard,
		FlowType:    models.FlowSequential,
		Tags:        []string{"history", "sequence"},
		Questions: []models.Question{
			{
				Text: "Order these inventions from earliest to latest.",
				Type: models.Timeline,
				Options: models.OptionList{
					{ID: "printing", Text: "Printing press"},
					{ID: "telegraph", Text: "Telegraph"},
					{ID: "telephone", Text: "Telephone"},
					{ID: "internet", Text: "Internet"},
				},
				CorrectAnswer: models.SequenceAnswer([]string{"printing", "telegraph", "telephone", "internet"}),
			},
			{
				Text: "Arrange the steps of the scientific method.",
				Type: models.Ordering,
				Options: models.OptionList{
					{ID: "observe", Text: "Observe"},
					{ID: "hypothesize", Text: "Form a hypothesis"},
					{ID: "experiment", Text: "Experiment"},
					{ID: "conclude", Text: "Draw conclusions"},
				},
				CorrectAnswer: models.SequenceAnswer([]string{"observe", "hypothesize", "experiment", "conclude"}),
			},
		},
	}
}

func categorizationTemplate() *models.EnhancedQuiz {
	return &models.EnhancedQuiz{
		Title:       "Sort It Out",
		Description: "Drag each item into the right bucket.",
		Emoji:       "🗂️",
		TimeLimit:   90,
		QuizType:    models.QuizCategorization,
		Difficulty:  models.DifficultyEasy,
		ScoringType: models.ScoringStandard,
		FlowType:    models.FlowSequential,
		Tags:        []string{"sorting"},
		Questions: []models.Question{
			{
				Text: "Sort these animals by class.",
				Type: models.Categorize,
				Options: models.OptionList{
					{ID: "eagle", Text: "Eagle"},
					{ID: "salmon", Text: "Salmon"},
					{ID: "penguin", Text: "Penguin"},
					{ID: "shark", Text: "Shark"},
				},
				CorrectAnswer: models.BucketsAnswer(map[string][]string{
					"birds": {"eagle", "penguin"},
					"fish":  {"salmon", "shark"},
				}),
			},
			{
				Text:    "Match each element to its group.",
				Type:    models.Matching,
				Options: models.OptionsFromStrings([]string{"Helium", "Sodium", "Chlorine"}),
				CorrectAnswer: models.PairsAnswer(map[string]string{
					"Helium":   "noble gas",
					"Sodium":   "alkali metal",
					"Chlorine": "halogen",
				}),
			},
		},
	}
}

func wordLogicTemplate() *models.EnhancedQuiz {
	threshold := 0.8
	return &models.EnhancedQuiz{
		Title:       "Word and Logic Puzzles",
		Description: "Fill in the blanks and reason it through.",
		Emoji:       "🧩",
		TimeLimit:   90,
		QuizType:    models.QuizWordLogic,
		Difficulty:  models.DifficultyMedium,
		ScoringType: models.ScoringStandard,
		FlowType:    models.FlowSequential,
		Tags:        []string{"words", "logic"},
		Questions: []models.Question{
			{
				Text:          "A word that reads the same forwards and backwards is called a ____.",
				Type:          models.FillBlank,
				CorrectAnswer: models.TextAnswer("palindrome"),
				Validation: &models.ValidationRule{
					Type:             "fuzzy",
					Threshold:        &threshold,
					AlternateAnswers: []string{"palindromes"},
				},
				Hint: "Think 'racecar'.",
			},
			{
				Text:           "Name two words that are anagrams of 'listen'.",
				Type:           models.List,
				CorrectAnswers: []string{"silent", "enlist", "tinsel"},
			},
			{
				Text:          "If all bloops are razzies and all razzies are lazzies, are all bloops lazzies?",
				Type:          models.MultipleChoice,
				Options:       models.OptionsFromStrings([]string{"Yes", "No", "Cannot tell"}),
				CorrectAnswer: models.TextAnswer("Yes"),
			},
		},
	}
}
