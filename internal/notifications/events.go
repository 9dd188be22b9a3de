package notifications

import (
	"time"

	"courtly/pkg/model"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingRejected  = "booking.rejected"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
)

// StatusChangeEvent is the payload published on every booking lifecycle
// change. OldStatus is empty for booking.created.
type StatusChangeEvent struct {
	BookingID   string              `json:"booking_id"`
	CourtID     string              `json:"court_id"`
	Date        string              `json:"date"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	OldStatus   model.BookingStatus `json:"old_status,omitempty"`
	NewStatus   model.BookingStatus `json:"new_status"`
	Reason      string              `json:"reason,omitempty"`
	ContactName string              `json:"contact_name"`
	Phone       string              `json:"phone"`
	OccurredAt  time.Time           `json:"occurred_at"`
}

// EventTypeFor maps a status change to its event name.
func EventTypeFor(old, next model.BookingStatus) string {
	switch {
	case old == "":
		return EventBookingCreated
	case next == model.StatusConfirmed:
		return EventBookingConfirmed
	case next == model.StatusCancelledByManager && old == model.StatusPending:
		return EventBookingRejected
	case next.IsCancelled():
		return EventBookingCancelled
	case next == model.StatusCompleted:
		return EventBookingCompleted
	default:
		return EventBookingCancelled
	}
}

// NewStatusChangeEvent builds the event for a booking that just moved from
// old to its current status.
func NewStatusChangeEvent(booking *model.Booking, old model.BookingStatus, reason string) StatusChangeEvent {
	return StatusChangeEvent{
		BookingID:   booking.ID,
		CourtID:     booking.CourtID,
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		OldStatus:   old,
		NewStatus:   booking.Status,
		Reason:      reason,
		ContactName: booking.ContactName,
		Phone:       booking.ContactPhone,
		OccurredAt:  time.Now().UTC(),
	}
}
