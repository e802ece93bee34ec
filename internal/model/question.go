package model

import "encoding/json"

type QuestionType string

const (
	Objective  QuestionType = "objective"
	Subjective QuestionType = "subjective"
	Both       QuestionType = "both"
)

type Question struct {
	UUIDBase
	TestID        string          `gorm:"index;type:varchar(36);not null" json:"testId"`
	Text          string          `gorm:"type:text;not null" json:"text"`
	Type          QuestionType    `gorm:"type:enum('objective','subjective','both');default:'objective'" json:"type"`
	Options       json.RawMessage `gorm:"type:json" json:"options"` // JSON: []string, order preserved
	CorrectOption string          `gorm:"type:text;not null" json:"correctOption"`
}

func (Question) TableName() string {
	return "questions"
}
