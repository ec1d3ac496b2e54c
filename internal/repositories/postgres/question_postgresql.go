package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/examforge/exam-portal/internal/cache"
	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/repositories"
)

type questionRepository struct {
	db          *gorm.DB
	cacheHelper *cache.CacheHelper
}

func newQuestionRepository(db *gorm.DB, cacheHelper *cache.CacheHelper) repositories.QuestionRepository {
	return &questionRepository{db: db, cacheHelper: cacheHelper}
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *questionRepository) CreateBatch(ctx context.Context, questions []*models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(questions, 100).Error; err != nil {
		return fmt.Errorf("failed to create questions: %w", err)
	}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id models.ID) (*models.Question, error) {
	var question models.Question

	cacheKey := cache.QuestionCacheConfig.Prefix + id.String()
	if r.cacheHelper != nil {
		if err := r.cacheHelper.Get(ctx, cacheKey, &question); err == nil {
			return &question, nil
		}
	}

	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	if r.cacheHelper != nil {
		_ = r.cacheHelper.Set(ctx, cacheKey, &question, cache.QuestionCacheConfig.TTL)
	}
	return &question, nil
}

func (r *questionRepository) GetByIDs(ctx context.Context, ids []models.ID) ([]*models.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []*models.Question
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to get questions by ids: %w", err)
	}
	return questions, nil
}

func (r *questionRepository) GetRandom(ctx context.Context, count int) ([]*models.Question, error) {
	var questions []*models.Question
	if err := r.db.WithContext(ctx).Order("RANDOM()").Limit(count).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to sample questions: %w", err)
	}
	return questions, nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}
