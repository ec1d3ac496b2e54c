package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/repositories"
)

type resultService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewResultService(repo repositories.Repository, logger *slog.Logger) ResultService {
	return &resultService{
		repo:   repo,
		logger: logger,
	}
}

func (s *resultService) GetByID(ctx context.Context, userID, resultID models.ID) (*models.Result, error) {
	result, err := s.repo.Result().GetByID(ctx, resultID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	if result.UserID != userID {
		return nil, NewPermissionError(userID, resultID, "result", "read", "not owned by user")
	}
	return result, nil
}

func (s *resultService) ListByUser(ctx context.Context, userID models.ID) ([]*models.Result, error) {
	results, err := s.repo.Result().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}
