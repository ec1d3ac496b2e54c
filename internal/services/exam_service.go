package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/examforge/exam-portal/internal/events"
	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/repositories"
	"github.com/examforge/exam-portal/internal/validator"
)

type examService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher

	questionCount    int
	defaultTimeLimit int
}

func NewExamService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher, questionCount, defaultTimeLimit int) ExamService {
	return &examService{
		repo:             repo,
		logger:           logger,
		validator:        validator,
		publisher:        publisher,
		questionCount:    questionCount,
		defaultTimeLimit: defaultTimeLimit,
	}
}

// ===== LIFECYCLE OPERATIONS =====

func (s *examService) Start(ctx context.Context, userID models.ID, req *StartExamRequest) (*StartExamResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	timeLimit := req.TimeLimit
	if timeLimit <= 0 {
		timeLimit = s.defaultTimeLimit
	}

	questions, err := s.repo.Question().GetRandom(ctx, s.questionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to sample questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	questionIDs := make([]models.ID, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}

	exam := models.NewExam(userID, questionIDs, timeLimit, time.Now().UTC())
	if err := s.repo.Exam().Create(ctx, exam); err != nil {
		return nil, fmt.Errorf("failed to create exam: %w", err)
	}

	s.logger.Info("exam started",
		"exam_id", exam.ID,
		"user_id", userID,
		"questions", exam.TotalQuestions,
		"time_limit", timeLimit)

	s.publishEvent(ctx, events.ExamStarted, map[string]interface{}{
		"exam_id":    exam.ID,
		"user_id":    userID,
		"time_limit": timeLimit,
	})

	return &StartExamResponse{
		ExamID:    exam.ID,
		Questions: publicQuestions(questions),
		TimeLimit: exam.TimeLimit,
		StartTime: exam.StartTime,
		EndTime:   exam.EndTime,
	}, nil
}

func (s *examService) Get(ctx context.Context, userID, examID models.ID) (*ExamView, error) {
	exam, err := s.getOwnedExam(ctx, userID, examID, "read")
	if err != nil {
		return nil, err
	}

	questions, err := s.orderedQuestions(ctx, s.repo, exam)
	if err != nil {
		return nil, err
	}

	return &ExamView{
		ExamID:      exam.ID,
		Questions:   publicQuestions(questions),
		Answers:     exam.Answers,
		TimeLimit:   exam.TimeLimit,
		StartTime:   exam.StartTime,
		EndTime:     exam.EndTime,
		IsCompleted: exam.IsCompleted,
	}, nil
}

func (s *examService) SaveAnswer(ctx context.Context, userID, examID models.ID, req *SaveAnswerRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}

	exam, err := s.getOwnedExam(ctx, userID, examID, "answer")
	if err != nil {
		return err
	}
	if exam.IsCompleted {
		return ErrExamAlreadyCompleted
	}

	index := *req.QuestionIndex
	if index < 0 || index >= exam.TotalQuestions {
		return ErrQuestionIndexOutOfRange
	}
	if req.Answer != nil && (*req.Answer < 0 || *req.Answer >= models.OptionCount) {
		return ErrAnswerOutOfRange
	}

	if err := s.repo.Exam().UpdateAnswer(ctx, examID, index, req.Answer); err != nil {
		// The exam completed between the read above and the write.
		if repositories.IsConflictError(err) {
			return ErrExamAlreadyCompleted
		}
		return fmt.Errorf("failed to save answer: %w", err)
	}

	return nil
}

func (s *examService) Submit(ctx context.Context, userID, examID models.ID) (*SubmitExamResponse, error) {
	exam, err := s.getOwnedExam(ctx, userID, examID, "submit")
	if err != nil {
		return nil, err
	}
	if exam.IsCompleted {
		return nil, ErrExamAlreadyCompleted
	}

	submittedAt := time.Now().UTC()

	// The terminal transition and the result creation share one
	// transaction: if scoring or the result insert fails, the exam stays
	// active instead of being stuck completed without a result.
	var result *models.Result
	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if err := tx.Exam().CompleteIfActive(ctx, examID, submittedAt); err != nil {
			if repositories.IsConflictError(err) {
				return ErrExamAlreadyCompleted
			}
			return fmt.Errorf("failed to complete exam: %w", err)
		}

		// Re-read after the terminal transition: answers written between
		// the ownership check above and CompleteIfActive still count.
		current, err := tx.Exam().GetByID(ctx, examID)
		if err != nil {
			return fmt.Errorf("failed to reload exam: %w", err)
		}

		questions, err := s.orderedQuestions(ctx, tx, current)
		if err != nil {
			return err
		}

		details, score := scoreExam(current, questions)

		result = &models.Result{
			ID:             models.NewID(),
			ExamID:         current.ID,
			UserID:         current.UserID,
			Score:          score,
			TotalQuestions: current.TotalQuestions,
			Percentage:     percentage(score, current.TotalQuestions),
			Answers:        details,
			TimeTaken:      roundedMinutes(submittedAt.Sub(current.StartTime)),
		}

		if err := tx.Result().Create(ctx, result); err != nil {
			return fmt.Errorf("failed to create result: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrExamAlreadyCompleted) {
			return nil, ErrExamAlreadyCompleted
		}
		return nil, err
	}

	s.logger.Info("exam submitted",
		"exam_id", exam.ID,
		"user_id", userID,
		"result_id", result.ID,
		"score", result.Score,
		"percentage", result.Percentage)

	s.publishEvent(ctx, events.ExamSubmitted, map[string]interface{}{
		"exam_id":      exam.ID,
		"user_id":      userID,
		"submitted_at": submittedAt,
	})
	s.publishEvent(ctx, events.ResultCreated, map[string]interface{}{
		"result_id":  result.ID,
		"exam_id":    exam.ID,
		"user_id":    userID,
		"score":      result.Score,
		"percentage": result.Percentage,
	})

	return &SubmitExamResponse{ResultID: result.ID}, nil
}
