package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/examforge/exam-portal/internal/events"
	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/validator"
)

func TestGetResultOwnership(t *testing.T) {
	repo := newMockRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	examSvc := NewExamService(repo, logger, validator.New(), events.NewMockEventPublisher(nil), 5, 30)
	resultSvc := NewResultService(repo, logger)
	seedBank(t, repo, 5)
	owner := models.NewID()

	started, err := examSvc.Start(context.Background(), owner, &StartExamRequest{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	submitted, err := examSvc.Submit(context.Background(), owner, started.ExamID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	result, err := resultSvc.GetByID(context.Background(), owner, submitted.ResultID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if result.ExamID != started.ExamID {
		t.Errorf("expected result for exam %s, got %s", started.ExamID, result.ExamID)
	}

	_, err = resultSvc.GetByID(context.Background(), models.NewID(), submitted.ResultID)
	if !IsPermissionError(err) {
		t.Errorf("expected permission error for foreign user, got %v", err)
	}

	_, err = resultSvc.GetByID(context.Background(), owner, models.NewID())
	if !errors.Is(err, ErrResultNotFound) {
		t.Errorf("expected ErrResultNotFound, got %v", err)
	}
}

func TestListResultsScopedToUser(t *testing.T) {
	repo := newMockRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	examSvc := NewExamService(repo, logger, validator.New(), events.NewMockEventPublisher(nil), 5, 30)
	resultSvc := NewResultService(repo, logger)
	seedBank(t, repo, 5)

	alice := models.NewID()
	bob := models.NewID()

	var aliceExams []models.ID
	for _, userID := range []models.ID{alice, alice, bob} {
		started, err := examSvc.Start(context.Background(), userID, &StartExamRequest{})
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		if _, err := examSvc.Submit(context.Background(), userID, started.ExamID); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if userID == alice {
			aliceExams = append(aliceExams, started.ExamID)
		}
	}

	results, err := resultSvc.ListByUser(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results for alice, got %d", len(results))
	}
	for _, r := range results {
		if r.UserID != alice {
			t.Errorf("foreign result %s leaked into alice's history", r.ID)
		}
	}

	// Newest first: the second exam's result leads.
	if results[0].ExamID != aliceExams[1] || results[1].ExamID != aliceExams[0] {
		t.Errorf("expected results ordered newest first, got exams %s, %s",
			results[0].ExamID, results[1].ExamID)
	}
	if results[0].CreatedAt.Before(results[1].CreatedAt) {
		t.Error("expected descending created_at order")
	}

	empty, err := resultSvc.ListByUser(context.Background(), models.NewID())
	if err != nil {
		t.Fatalf("ListByUser empty: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty history, got %d results", len(empty))
	}
}
