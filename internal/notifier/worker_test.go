package notifier

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"courtly/internal/notifications"
	"courtly/pkg/kafka"
	"courtly/pkg/logger"
	"courtly/pkg/model"
)

type captureSender struct {
	phones []string
	texts  []string
}

func (c *captureSender) Send(_ context.Context, phone string, text string) error {
	c.phones = append(c.phones, phone)
	c.texts = append(c.texts, text)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Format: logger.FormatText, Service: "test"})
}

func eventMessage(t *testing.T, eventType string, event notifications.StatusChangeEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return kafka.Message{
		Key:   event.CourtID,
		Value: value,
		Headers: map[string]string{
			kafka.HeaderEventType: eventType,
			kafka.HeaderEventID:   "test-event-1",
		},
	}
}

func TestWorkerRendersLifecycleEvents(t *testing.T) {
	event := notifications.StatusChangeEvent{
		BookingID:   "b1",
		CourtID:     "c1",
		Date:        "2026-09-15",
		StartTime:   "19:00",
		EndTime:     "20:00",
		ContactName: "Ana",
		Phone:       "+5511987654321",
		Reason:      "court under maintenance",
	}

	cases := []struct {
		eventType string
		newStatus model.BookingStatus
		contains  string
	}{
		{notifications.EventBookingCreated, model.StatusPending, "awaiting approval"},
		{notifications.EventBookingConfirmed, model.StatusConfirmed, "confirmed"},
		{notifications.EventBookingRejected, model.StatusCancelledByManager, "declined"},
		{notifications.EventBookingCancelled, model.StatusCancelledByUser, "cancelled as requested"},
		{notifications.EventBookingCancelled, model.StatusCancelledByManager, "cancelled by the venue"},
		{notifications.EventBookingCompleted, model.StatusCompleted, "complete"},
	}

	for _, tc := range cases {
		t.Run(tc.eventType+"/"+string(tc.newStatus), func(t *testing.T) {
			sender := &captureSender{}
			worker := NewWorker(sender, testLogger())

			ev := event
			ev.NewStatus = tc.newStatus
			if err := worker.Handle(context.Background(), eventMessage(t, tc.eventType, ev)); err != nil {
				t.Fatalf("Handle failed: %v", err)
			}

			if len(sender.texts) != 1 {
				t.Fatalf("expected one delivery, got %d", len(sender.texts))
			}
			if !strings.Contains(sender.texts[0], tc.contains) {
				t.Errorf("expected text containing %q, got %q", tc.contains, sender.texts[0])
			}
			if sender.phones[0] != event.Phone {
				t.Errorf("expected delivery to %s, got %s", event.Phone, sender.phones[0])
			}
		})
	}
}

func TestWorkerSkipsUnknownEventType(t *testing.T) {
	sender := &captureSender{}
	worker := NewWorker(sender, testLogger())

	msg := eventMessage(t, "booking.snoozed", notifications.StatusChangeEvent{Phone: "+5511987654321"})
	if err := worker.Handle(context.Background(), msg); err != nil {
		t.Fatalf("expected unknown event to be skipped, got error: %v", err)
	}
	if len(sender.texts) != 0 {
		t.Errorf("expected no delivery, got %d", len(sender.texts))
	}
}

func TestWorkerRejectsMalformedPayload(t *testing.T) {
	sender := &captureSender{}
	worker := NewWorker(sender, testLogger())

	msg := kafka.Message{
		Value:   []byte("{not json"),
		Headers: map[string]string{kafka.HeaderEventType: notifications.EventBookingCreated},
	}
	if err := worker.Handle(context.Background(), msg); err == nil {
		t.Fatal("expected decode error, got nil")
	}
}
