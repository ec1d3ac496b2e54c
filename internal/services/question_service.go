package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/repositories"
	"github.com/examforge/exam-portal/internal/validator"
)

type questionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewQuestionService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) QuestionService {
	return &questionService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *questionService) Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	question, err := models.NewQuestion(req.Question, req.Options, *req.CorrectAnswer, models.DifficultyLevel(req.Difficulty), req.Subject)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Question().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.Info("question created", "question_id", question.ID, "subject", question.Subject)
	return question, nil
}

func (s *questionService) ImportExcel(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	questions, skipped, err := parseQuestionWorkbook(r, s.logger)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Question().CreateBatch(ctx, questions); err != nil {
		return nil, fmt.Errorf("failed to import questions: %w", err)
	}

	s.logger.Info("question bank imported", "imported", len(questions), "skipped", skipped)
	return &ImportSummary{Imported: len(questions), Skipped: skipped}, nil
}

// SeedDefault loads the built-in sample bank on first startup so a fresh
// deployment can serve exams immediately.
func (s *questionService) SeedDefault(ctx context.Context) error {
	count, err := s.repo.Question().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	questions, err := sampleQuestions()
	if err != nil {
		return err
	}

	if err := s.repo.Question().CreateBatch(ctx, questions); err != nil {
		return fmt.Errorf("failed to seed questions: %w", err)
	}

	s.logger.Info("sample questions seeded", "count", len(questions))
	return nil
}
