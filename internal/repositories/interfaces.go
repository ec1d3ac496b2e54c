package repositories

import (
	"context"
	"time"

	"github.com/examforge/exam-portal/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id models.ID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	CreateBatch(ctx context.Context, questions []*models.Question) error
	GetByID(ctx context.Context, id models.ID) (*models.Question, error)
	// GetByIDs returns the questions for the given ids in unspecified
	// order; callers needing exam order re-sort by id.
	GetByIDs(ctx context.Context, ids []models.ID) ([]*models.Question, error)
	// GetRandom samples up to count distinct questions from the bank.
	GetRandom(ctx context.Context, count int) ([]*models.Question, error)
	Count(ctx context.Context) (int64, error)
}

type ExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) error
	GetByID(ctx context.Context, id models.ID) (*models.Exam, error)
	// UpdateAnswer overwrites exactly one answer slot of an active exam.
	// Returns ErrConflict if the exam has already been completed.
	UpdateAnswer(ctx context.Context, id models.ID, questionIndex int, answer *int) error
	// CompleteIfActive is the single conditional update that makes the
	// terminal transition atomic: it marks the exam completed and stamps
	// submittedAt (also overwriting endTime) only if the exam is still
	// active, returning ErrConflict otherwise.
	CompleteIfActive(ctx context.Context, id models.ID, submittedAt time.Time) error
}

type ResultRepository interface {
	Create(ctx context.Context, result *models.Result) error
	GetByID(ctx context.Context, id models.ID) (*models.Result, error)
	// ListByUser returns all results for a user, newest first.
	ListByUser(ctx context.Context, userID models.ID) ([]*models.Result, error)
}
