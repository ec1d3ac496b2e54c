package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnswerDetail duplicates the question text and options so a result stays
// stable even if the question bank changes later.
type AnswerDetail struct {
	QuestionID    ID       `json:"questionId"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	UserAnswer    *int     `json:"userAnswer"`
	CorrectAnswer int      `json:"correctAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
}

// Result is the immutable scored outcome of one completed exam.
type Result struct {
	ID     ID `json:"id" gorm:"primaryKey;size:36"`
	ExamID ID `json:"examId" gorm:"not null;index;size:36"`
	UserID ID `json:"userId" gorm:"not null;index;size:36"`

	Score          int                               `json:"score" gorm:"not null"`
	TotalQuestions int                               `json:"totalQuestions" gorm:"not null"`
	Percentage     int                               `json:"percentage" gorm:"not null"`
	Answers        datatypes.JSONSlice[AnswerDetail] `json:"answers" gorm:"type:jsonb;not null"`
	TimeTaken      int                               `json:"timeTaken" gorm:"not null"` // minutes

	CreatedAt time.Time `json:"createdAt"`
}

func (Result) TableName() string {
	return "results"
}
