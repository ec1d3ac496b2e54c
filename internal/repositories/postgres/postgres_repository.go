package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/examforge/exam-portal/internal/cache"
	"github.com/examforge/exam-portal/internal/repositories"
)

// RepositoryConfig carries the external connections the repositories need.
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

type repository struct {
	db          *gorm.DB
	cacheHelper *cache.CacheHelper

	user     repositories.UserRepository
	question repositories.QuestionRepository
	exam     repositories.ExamRepository
	result   repositories.ResultRepository
}

func newRepository(db *gorm.DB, cacheHelper *cache.CacheHelper) *repository {
	return &repository{
		db:          db,
		cacheHelper: cacheHelper,
		user:        newUserRepository(db),
		question:    newQuestionRepository(db, cacheHelper),
		exam:        newExamRepository(db),
		result:      newResultRepository(db, cacheHelper),
	}
}

func (r *repository) User() repositories.UserRepository         { return r.user }
func (r *repository) Question() repositories.QuestionRepository { return r.question }
func (r *repository) Exam() repositories.ExamRepository         { return r.exam }
func (r *repository) Result() repositories.ResultRepository     { return r.result }

func (r *repository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepository(tx, r.cacheHelper))
	})
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// ===== REPOSITORY MANAGER =====

type repositoryManager struct {
	config RepositoryConfig
	repo   *repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &repositoryManager{config: config}
}

func (m *repositoryManager) Initialize() error {
	if m.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	var cacheHelper *cache.CacheHelper
	if m.config.RedisClient != nil {
		cacheHelper = cache.NewCacheHelper(m.config.RedisClient, "exam-portal:")
	}

	m.repo = newRepository(m.config.DB, cacheHelper)
	return nil
}

func (m *repositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *repositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repositories not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *repositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close()
}
