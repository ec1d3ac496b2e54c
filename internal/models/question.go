package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// OptionCount is the fixed number of answer options per question. The
// constructor enforces it so answer indices are always 0..3.
const OptionCount = 4

type Question struct {
	ID            ID                            `json:"id" gorm:"primaryKey;size:36"`
	Text          string                        `json:"question" gorm:"column:text;type:text;not null"`
	Options       datatypes.JSONSlice[string]   `json:"options" gorm:"type:jsonb;not null"`
	CorrectAnswer int                           `json:"correctAnswer" gorm:"not null"`
	Difficulty    DifficultyLevel               `json:"difficulty" gorm:"default:medium;index;size:10"`
	Subject       string                        `json:"subject" gorm:"index;size:100"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Question) TableName() string {
	return "questions"
}

// NewQuestion validates the option/answer invariant at construction time.
func NewQuestion(text string, options []string, correctAnswer int, difficulty DifficultyLevel, subject string) (*Question, error) {
	if text == "" {
		return nil, fmt.Errorf("question text is required")
	}
	if len(options) != OptionCount {
		return nil, fmt.Errorf("question must have exactly %d options, got %d", OptionCount, len(options))
	}
	for i, opt := range options {
		if opt == "" {
			return nil, fmt.Errorf("option %d must not be empty", i)
		}
	}
	if correctAnswer < 0 || correctAnswer >= OptionCount {
		return nil, fmt.Errorf("correct answer index %d out of range [0,%d)", correctAnswer, OptionCount)
	}
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	case "":
		difficulty = DifficultyMedium
	default:
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	return &Question{
		ID:            NewID(),
		Text:          text,
		Options:       datatypes.NewJSONSlice(options),
		CorrectAnswer: correctAnswer,
		Difficulty:    difficulty,
		Subject:       subject,
	}, nil
}

// PublicQuestion is the student-facing projection: the correct answer is
// withheld until a result exists.
type PublicQuestion struct {
	ID       ID       `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (q *Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:       q.ID,
		Question: q.Text,
		Options:  q.Options,
	}
}
