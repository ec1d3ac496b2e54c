package events

import (
	"context"
	"testing"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent(ExamStarted, map[string]interface{}{"exam_id": "e1"})

	if event.ID == "" {
		t.Error("expected a generated event id")
	}
	if event.Type != ExamStarted {
		t.Errorf("expected type %s, got %s", ExamStarted, event.Type)
	}
	if event.Source != eventSource || event.Version != eventVersion {
		t.Errorf("unexpected envelope %+v", event)
	}
	if event.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
}

func TestMockPublisherRecordsEvents(t *testing.T) {
	publisher := NewMockEventPublisher(nil)
	ctx := context.Background()

	if err := publisher.Publish(ctx, NewEvent(ExamStarted, nil)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := publisher.Publish(ctx, NewEvent(ExamSubmitted, nil)); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 2 {
		t.Fatalf("expected 2 events, got %d", len(published))
	}
	if published[0].Type != ExamStarted || published[1].Type != ExamSubmitted {
		t.Errorf("unexpected event order %s, %s", published[0].Type, published[1].Type)
	}

	publisher.ClearEvents()
	if got := publisher.GetPublishedEvents(); len(got) != 0 {
		t.Errorf("expected no events after clear, got %d", len(got))
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopEventPublisher()
	if err := publisher.Publish(context.Background(), NewEvent(ResultCreated, nil)); err != nil {
		t.Errorf("Publish: %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
