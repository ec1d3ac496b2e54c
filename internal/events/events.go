package events

import (
	"context"
	"time"
)

// Event types published by the exam lifecycle engine.
const (
	ExamStarted   = "exam.started"
	ExamSubmitted = "exam.submitted"
	ResultCreated = "result.created"
)

const (
	eventSource  = "exam-portal"
	eventVersion = "1.0"
)

type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// EventPublisher publishes domain events. Publishing is best-effort from
// the engine's point of view: a failed publish never fails the request.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
