package models

import (
	"time"

	"gorm.io/datatypes"
)

// Exam is one timed attempt owned by a user. The question set and answer
// slots are fixed at creation; SubmitExam is the only terminal transition.
type Exam struct {
	ID     ID `json:"id" gorm:"primaryKey;size:36"`
	UserID ID `json:"userId" gorm:"not null;index;size:36"`

	QuestionIDs    datatypes.JSONSlice[ID]   `json:"questionIds" gorm:"column:question_ids;type:jsonb;not null"`
	Answers        datatypes.JSONSlice[*int] `json:"answers" gorm:"type:jsonb;not null"`
	TotalQuestions int                       `json:"totalQuestions" gorm:"not null"`

	TimeLimit   int        `json:"timeLimit" gorm:"not null"` // minutes
	StartTime   time.Time  `json:"startTime" gorm:"not null"`
	EndTime     time.Time  `json:"endTime" gorm:"not null"`
	SubmittedAt *time.Time `json:"submittedAt"`
	IsCompleted bool       `json:"isCompleted" gorm:"not null;default:false;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (Exam) TableName() string {
	return "exams"
}

// NewExam builds an active exam with every answer slot unanswered.
func NewExam(userID ID, questionIDs []ID, timeLimit int, startTime time.Time) *Exam {
	return &Exam{
		ID:             NewID(),
		UserID:         userID,
		QuestionIDs:    datatypes.NewJSONSlice(questionIDs),
		Answers:        datatypes.NewJSONSlice(make([]*int, len(questionIDs))),
		TotalQuestions: len(questionIDs),
		TimeLimit:      timeLimit,
		StartTime:      startTime,
		EndTime:        startTime.Add(time.Duration(timeLimit) * time.Minute),
	}
}
