package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizRow is the persisted shape of the quizzes table. The importer's
// converter is the only producer; defaults are filled there, not by the
// database.
type QuizRow struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Description *string        `json:"description" gorm:"type:text"`
	Emoji       string         `json:"emoji" gorm:"size:16"`
	TimeLimit   int            `json:"time_limit" gorm:"not null"`
	QuizType    string         `json:"quiz_type" gorm:"not null;size:32;index" validate:"required,quiz_type"`
	Settings    datatypes.JSON `json:"settings" gorm:"type:jsonb"`
	Tags        datatypes.JSON `json:"tags" gorm:"type:jsonb"`
	Difficulty  string         `json:"difficulty" gorm:"size:16" validate:"omitempty,difficulty_level"`
	ScoringType string         `json:"scoring_type" gorm:"size:32"`
	FlowType    string         `json:"flow_type" gorm:"size:32"`
	IsPublished bool           `json:"is_published" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Questions []QuestionRow `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

func (QuizRow) TableName() string {
	return "quizzes"
}

// QuestionRow is the persisted shape of the questions table. Exactly one of
// Options+CorrectAnswer, CorrectAnswers, or MapCoordinates is populated,
// selected by QuestionType.
type QuestionRow struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	QuizID       uint   `json:"quiz_id" gorm:"not null;index"`
	Text         string `json:"text" gorm:"type:text;not null" validate:"required"`
	QuestionType string `json:"question_type" gorm:"not null;size:32;index" validate:"required,question_type"`
	OrderIndex   int    `json:"order_index" gorm:"not null"`
	Points       int    `json:"points" gorm:"default:10"`

	Hint        *string        `json:"hint" gorm:"type:text"`
	Explanation *string        `json:"explanation" gorm:"type:text"`
	Tags        datatypes.JSON `json:"tags" gorm:"type:jsonb"`
	Settings    datatypes.JSON `json:"settings" gorm:"type:jsonb"`
	Media       datatypes.JSON `json:"media" gorm:"type:jsonb"`
	Validation  datatypes.JSON `json:"validation" gorm:"type:jsonb"`

	Options        datatypes.JSON `json:"options" gorm:"type:jsonb"`
	CorrectAnswer  datatypes.JSON `json:"correct_answer" gorm:"type:jsonb"`
	CorrectAnswers datatypes.JSON `json:"correct_answers" gorm:"type:jsonb"`
	MapCoordinates datatypes.JSON `json:"map_coordinates" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QuestionRow) TableName() string {
	return "questions"
}
