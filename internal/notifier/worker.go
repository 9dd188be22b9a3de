package notifier

import (
	"context"
	"fmt"

	"courtly/internal/notifications"
	"courtly/pkg/kafka"
	"courtly/pkg/logger"
	"courtly/pkg/model"
)

// Sender delivers a rendered notification to the booking contact.
type Sender interface {
	Send(ctx context.Context, phone string, text string) error
}

// LogSender writes notifications to the log instead of a messaging gateway.
// It stands in until an SMS or WhatsApp provider is wired up.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, phone string, text string) error {
	s.log.Info("Notification delivered",
		"phone", phone,
		"text", text,
	)
	return nil
}

// Worker consumes booking lifecycle events and turns them into user-facing
// notifications.
type Worker struct {
	sender Sender
	log    *logger.Logger
}

func NewWorker(sender Sender, log *logger.Logger) *Worker {
	return &Worker{
		sender: sender,
		log:    log,
	}
}

// Handle is the kafka message handler. Unknown event types are skipped
// without error so new producers do not poison the consumer group.
func (w *Worker) Handle(ctx context.Context, msg kafka.Message) error {
	eventType := msg.GetEventType()

	var event notifications.StatusChangeEvent
	if err := msg.DecodeValue(&event); err != nil {
		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	text, ok := w.render(eventType, event)
	if !ok {
		w.log.Warn("Skipping unknown booking event",
			"event_type", eventType,
			"event_id", msg.GetEventID(),
		)
		return nil
	}

	if err := w.sender.Send(ctx, event.Phone, text); err != nil {
		return fmt.Errorf("failed to deliver notification for booking %s: %w", event.BookingID, err)
	}

	w.log.Debug("Booking event handled",
		"event_type", eventType,
		"booking_id", event.BookingID,
	)
	return nil
}

func (w *Worker) render(eventType string, event notifications.StatusChangeEvent) (string, bool) {
	slot := fmt.Sprintf("%s %s-%s", event.Date, event.StartTime, event.EndTime)

	switch eventType {
	case notifications.EventBookingCreated:
		return fmt.Sprintf("Hi %s, your booking request for %s was received and is awaiting approval.",
			event.ContactName, slot), true
	case notifications.EventBookingConfirmed:
		return fmt.Sprintf("Hi %s, your booking for %s is confirmed. See you there!",
			event.ContactName, slot), true
	case notifications.EventBookingRejected:
		return fmt.Sprintf("Hi %s, your booking request for %s was declined: %s",
			event.ContactName, slot, event.Reason), true
	case notifications.EventBookingCancelled:
		if event.NewStatus == model.StatusCancelledByUser {
			return fmt.Sprintf("Hi %s, your booking for %s was cancelled as requested.",
				event.ContactName, slot), true
		}
		return fmt.Sprintf("Hi %s, your booking for %s was cancelled by the venue: %s",
			event.ContactName, slot, event.Reason), true
	case notifications.EventBookingCompleted:
		return fmt.Sprintf("Hi %s, thanks for playing! Your booking for %s is complete.",
			event.ContactName, slot), true
	default:
		return "", false
	}
}
