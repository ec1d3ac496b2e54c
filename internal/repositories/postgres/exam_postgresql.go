package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/repositories"
)

type examRepository struct {
	db *gorm.DB
}

func newExamRepository(db *gorm.DB) repositories.ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *models.Exam) error {
	if err := r.db.WithContext(ctx).Create(exam).Error; err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

func (r *examRepository) GetByID(ctx context.Context, id models.ID) (*models.Exam, error) {
	var exam models.Exam
	if err := r.db.WithContext(ctx).First(&exam, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return &exam, nil
}

// UpdateAnswer rewrites a single slot of the answers JSONB array in place.
// The is_completed guard makes the write race-safe against a concurrent
// submit; disjoint slots never conflict.
func (r *examRepository) UpdateAnswer(ctx context.Context, id models.ID, questionIndex int, answer *int) error {
	value := "null"
	if answer != nil {
		value = strconv.Itoa(*answer)
	}
	path := fmt.Sprintf("{%d}", questionIndex)

	res := r.db.WithContext(ctx).Model(&models.Exam{}).
		Where("id = ? AND is_completed = ?", id, false).
		Update("answers", gorm.Expr("jsonb_set(answers, ?::text[], ?::jsonb)", path, value))
	if res.Error != nil {
		return fmt.Errorf("failed to update answer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrConflict
	}
	return nil
}

// CompleteIfActive performs the terminal transition as one conditional
// update, so two concurrent submits cannot both succeed.
func (r *examRepository) CompleteIfActive(ctx context.Context, id models.ID, submittedAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Exam{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]interface{}{
			"is_completed": true,
			"submitted_at": submittedAt,
			"end_time":     submittedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to complete exam: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrConflict
	}
	return nil
}
