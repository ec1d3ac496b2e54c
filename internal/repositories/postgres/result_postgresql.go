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

type resultRepository struct {
	db          *gorm.DB
	cacheHelper *cache.CacheHelper
}

func newResultRepository(db *gorm.DB, cacheHelper *cache.CacheHelper) repositories.ResultRepository {
	return &resultRepository{db: db, cacheHelper: cacheHelper}
}

func (r *resultRepository) Create(ctx context.Context, result *models.Result) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

// GetByID reads through the cache. Results are immutable once created, so
// a cached copy can never go stale.
func (r *resultRepository) GetByID(ctx context.Context, id models.ID) (*models.Result, error) {
	var result models.Result

	cacheKey := cache.ResultCacheConfig.Prefix + id.String()
	if r.cacheHelper != nil {
		if err := r.cacheHelper.Get(ctx, cacheKey, &result); err == nil {
			return &result, nil
		}
	}

	if err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	if r.cacheHelper != nil {
		_ = r.cacheHelper.Set(ctx, cacheKey, &result, cache.ResultCacheConfig.TTL)
	}
	return &result, nil
}

func (r *resultRepository) ListByUser(ctx context.Context, userID models.ID) ([]*models.Result, error) {
	var results []*models.Result
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}
