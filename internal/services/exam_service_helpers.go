package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/examforge/exam-portal/internal/events"
	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/repositories"
)

// getOwnedExam fetches the exam and enforces the ownership check applied
// to every exam accessor.
func (s *examService) getOwnedExam(ctx context.Context, userID, examID models.ID, action string) (*models.Exam, error) {
	exam, err := s.repo.Exam().GetByID(ctx, examID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	if exam.UserID != userID {
		return nil, NewPermissionError(userID, examID, "exam", action, "not owned by user")
	}
	return exam, nil
}

// orderedQuestions resolves the exam's question set in its original order.
func (s *examService) orderedQuestions(ctx context.Context, repo repositories.Repository, exam *models.Exam) ([]*models.Question, error) {
	questions, err := repo.Question().GetByIDs(ctx, exam.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get exam questions: %w", err)
	}

	byID := make(map[models.ID]*models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	ordered := make([]*models.Question, len(exam.QuestionIDs))
	for i, id := range exam.QuestionIDs {
		q, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("exam %s references missing question %s", exam.ID, id)
		}
		ordered[i] = q
	}
	return ordered, nil
}

// scoreExam compares each stored answer against the correct one in
// original question order. An unanswered slot counts as incorrect.
func scoreExam(exam *models.Exam, questions []*models.Question) ([]models.AnswerDetail, int) {
	details := make([]models.AnswerDetail, len(questions))
	score := 0

	for i, q := range questions {
		var userAnswer *int
		if i < len(exam.Answers) {
			userAnswer = exam.Answers[i]
		}

		isCorrect := userAnswer != nil && *userAnswer == q.CorrectAnswer
		if isCorrect {
			score++
		}

		details[i] = models.AnswerDetail{
			QuestionID:    q.ID,
			Question:      q.Text,
			Options:       q.Options,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
		}
	}
	return details, score
}

func percentage(score, total int) int {
	return int(math.Round(float64(score) / float64(total) * 100))
}

func roundedMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}

func publicQuestions(questions []*models.Question) []models.PublicQuestion {
	public := make([]models.PublicQuestion, len(questions))
	for i, q := range questions {
		public[i] = q.Public()
	}
	return public
}

// publishEvent publishes best-effort: a broker failure is logged, never
// surfaced to the caller.
func (s *examService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		s.logger.Error("failed to publish event", "event_type", eventType, "error", err)
	}
}
