package services

import (
	"context"
	"io"
	"time"

	"github.com/examforge/exam-portal/internal/models"
)

// ===== AUTH DTOs =====

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserView struct {
	ID        models.ID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// ===== EXAM DTOs =====

type StartExamRequest struct {
	// TimeLimit in minutes; defaults to the configured limit when unset.
	TimeLimit int `json:"timeLimit" validate:"omitempty,min=1,max=480"`
}

type StartExamResponse struct {
	ExamID    models.ID               `json:"examId"`
	Questions []models.PublicQuestion `json:"questions"`
	TimeLimit int                     `json:"timeLimit"`
	StartTime time.Time               `json:"startTime"`
	EndTime   time.Time               `json:"endTime"`
}

type ExamView struct {
	ExamID      models.ID               `json:"examId"`
	Questions   []models.PublicQuestion `json:"questions"`
	Answers     []*int                  `json:"answers"`
	TimeLimit   int                     `json:"timeLimit"`
	StartTime   time.Time               `json:"startTime"`
	EndTime     time.Time               `json:"endTime"`
	IsCompleted bool                    `json:"isCompleted"`
}

type SaveAnswerRequest struct {
	QuestionIndex *int `json:"questionIndex" validate:"required,min=0"`
	// Answer is nil to clear the slot, or an option index 0..3. Range is
	// enforced by the service so callers get ErrAnswerOutOfRange.
	Answer *int `json:"answer"`
}

type SubmitExamResponse struct {
	ResultID models.ID `json:"resultId"`
}

// ===== QUESTION DTOs =====

type CreateQuestionRequest struct {
	Question      string   `json:"question" validate:"required,max=2000"`
	Options       []string `json:"options" validate:"required,len=4,dive,required,max=500"`
	CorrectAnswer *int     `json:"correctAnswer" validate:"required,min=0,max=3"`
	Difficulty    string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Subject       string   `json:"subject" validate:"required,max=100"`
}

type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	GetUser(ctx context.Context, userID models.ID) (*UserView, error)
}

// ExamService owns the exam lifecycle state machine:
// Active -> Active (SaveAnswer self-loop) -> Completed (Submit, terminal).
type ExamService interface {
	Start(ctx context.Context, userID models.ID, req *StartExamRequest) (*StartExamResponse, error)
	Get(ctx context.Context, userID, examID models.ID) (*ExamView, error)
	SaveAnswer(ctx context.Context, userID, examID models.ID, req *SaveAnswerRequest) error
	Submit(ctx context.Context, userID, examID models.ID) (*SubmitExamResponse, error)
}

type ResultService interface {
	GetByID(ctx context.Context, userID, resultID models.ID) (*models.Result, error)
	ListByUser(ctx context.Context, userID models.ID) ([]*models.Result, error)
}

type QuestionService interface {
	Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error)
	// ImportExcel reads an .xlsx workbook of bank items (one question per
	// row) and inserts the valid ones.
	ImportExcel(ctx context.Context, r io.Reader) (*ImportSummary, error)
	// SeedDefault loads the built-in sample bank when the store is empty.
	SeedDefault(ctx context.Context) error
}
