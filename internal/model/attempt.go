package model

import "time"

type AttemptStatus string

const (
	AttemptCompleted  AttemptStatus = "completed"
	AttemptIncomplete AttemptStatus = "incomplete"
	AttemptCheated    AttemptStatus = "cheated"
)

// Attempt is one user's scored submission for one test. Rows are append-only:
// they are created once at submission time and never updated.
type Attempt struct {
	UUIDBase
	UserID          uint            `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TestID          string          `gorm:"index;type:varchar(36);not null" json:"testId"`
	Test            *Test           `gorm:"foreignKey:TestID" json:"test,omitempty"`
	Answers         []AttemptAnswer `gorm:"foreignKey:AttemptID" json:"answers"`
	Score           int             `gorm:"not null" json:"score"`
	DurationSeconds *int            `json:"durationSeconds"`
	CompletedAt     time.Time       `gorm:"not null" json:"completedAt"`
	Status          AttemptStatus   `gorm:"size:20;default:'completed'" json:"status"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// AttemptAnswer stores the evaluated result for a single resolved answer.
// Correctness is computed once at submission time and never recomputed.
type AttemptAnswer struct {
	UUIDBase
	AttemptID      string    `gorm:"index;type:varchar(36);not null" json:"-"`
	QuestionID     string    `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Question       *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	SelectedOption string    `gorm:"type:text" json:"selectedOption"`
	IsCorrect      bool      `gorm:"not null" json:"isCorrect"`
	Position       int       `gorm:"default:0" json:"-"` // submission order
}

func (AttemptAnswer) TableName() string {
	return "attempt_answers"
}
