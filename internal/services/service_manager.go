package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/examforge/exam-portal/internal/config"
	"github.com/examforge/exam-portal/internal/events"
	"github.com/examforge/exam-portal/internal/repositories"
	"github.com/examforge/exam-portal/internal/validator"
)

// ServiceManager wires and owns the lifecycle of all services.
type ServiceManager interface {
	Auth() AuthService
	Exam() ExamService
	Question() QuestionService
	Result() ResultService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type defaultServiceManager struct {
	authService     AuthService
	examService     ExamService
	questionService QuestionService
	resultService   ResultService

	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewDefaultServiceManager(repo repositories.Repository, cfg *config.Config, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) ServiceManager {
	return &defaultServiceManager{
		authService:     NewAuthService(repo, logger, v, cfg.JWTSecret, cfg.TokenTTL),
		examService:     NewExamService(repo, logger, v, publisher, cfg.ExamQuestionCount, cfg.DefaultTimeLimit),
		questionService: NewQuestionService(repo, logger, v),
		resultService:   NewResultService(repo, logger),
		publisher:       publisher,
		logger:          logger,
	}
}

func (m *defaultServiceManager) Auth() AuthService         { return m.authService }
func (m *defaultServiceManager) Exam() ExamService         { return m.examService }
func (m *defaultServiceManager) Question() QuestionService { return m.questionService }
func (m *defaultServiceManager) Result() ResultService     { return m.resultService }

// Initialize seeds the question bank if it is empty.
func (m *defaultServiceManager) Initialize(ctx context.Context) error {
	if err := m.questionService.SeedDefault(ctx); err != nil {
		return fmt.Errorf("failed to seed question bank: %w", err)
	}
	return nil
}

func (m *defaultServiceManager) Shutdown(ctx context.Context) error {
	if m.publisher != nil {
		if err := m.publisher.Close(); err != nil {
			return fmt.Errorf("failed to close event publisher: %w", err)
		}
	}
	return nil
}
