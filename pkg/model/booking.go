package model

import (
	"time"
)

// Booking is a reservation of one court for a half-open [StartTime, EndTime)
// interval on a single date. Times are zero-padded 24-hour HH:MM strings and
// the date is YYYY-MM-DD, so same-day intervals compare lexically.
//
// Bookings are never deleted: they reach a terminal status and stay
// queryable for history.
type Booking struct {
	ID                 string        `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	CourtID            string        `json:"court_id" bson:"court_id" validate:"required,mongodb"`
	Date               string        `json:"date" bson:"date" validate:"required"`
	StartTime          string        `json:"start_time" bson:"start_time" validate:"required"`
	EndTime            string        `json:"end_time" bson:"end_time" validate:"required"`
	Status             BookingStatus `json:"status" bson:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED_BY_USER CANCELLED_BY_MANAGER"`
	CancellationReason string        `json:"cancellation_reason,omitempty" bson:"cancellation_reason,omitempty"`
	NumberOfPlayers    int           `json:"number_of_players" bson:"number_of_players" validate:"required,min=1,max=22"`
	TotalPrice         float64       `json:"total_price" bson:"total_price" validate:"omitempty,min=0"`
	ContactName        string        `json:"contact_name" bson:"contact_name" validate:"required,min=2,max=100"`
	ContactPhone       string        `json:"contact_phone" bson:"contact_phone" validate:"required,e164"`
	CreatedAt          time.Time     `json:"created_at" bson:"created_at" validate:"omitempty"`
}
