package notifications

import (
	"context"

	"courtly/pkg/kafka"
	"courtly/pkg/logger"
	"courtly/pkg/model"
)

// Emitter publishes booking lifecycle events. Emission is best-effort:
// implementations log failures and never propagate them into the booking
// write path.
type Emitter interface {
	EmitStatusChange(ctx context.Context, booking *model.Booking, old model.BookingStatus, reason string)
	Close() error
}

type kafkaEmitter struct {
	producer *kafka.Producer
	source   string
	log      *logger.Logger
}

func NewKafkaEmitter(producer *kafka.Producer, source string, log *logger.Logger) Emitter {
	return &kafkaEmitter{
		producer: producer,
		source:   source,
		log:      log,
	}
}

func (e *kafkaEmitter) EmitStatusChange(ctx context.Context, booking *model.Booking, old model.BookingStatus, reason string) {
	eventType := EventTypeFor(old, booking.Status)
	event := NewStatusChangeEvent(booking, old, reason)

	msg := kafka.NewMessage().
		WithKey(booking.CourtID).
		WithValue(event).
		WithEventType(eventType).
		WithSource(e.source).
		Build()

	if err := e.producer.Publish(ctx, msg); err != nil {
		e.log.Error("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
		return
	}

	e.log.Debug("Booking event published",
		"event_type", eventType,
		"booking_id", booking.ID,
		"court_id", booking.CourtID,
	)
}

func (e *kafkaEmitter) Close() error {
	return e.producer.Close()
}

// NopEmitter discards events. Used when the broker is not configured and in
// tests that do not assert on emission.
type NopEmitter struct{}

func (NopEmitter) EmitStatusChange(context.Context, *model.Booking, model.BookingStatus, string) {}
func (NopEmitter) Close() error                                                                 { return nil }
