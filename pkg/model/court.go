package model

import "time"

// Court is a bookable unit owned by a manager. OpeningTime and ClosingTime
// bound the daily window a slot may occupy, in HH:MM form like booking times.
type Court struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	OwnerID     string    `json:"owner_id" bson:"owner_id" validate:"required"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Sport       string    `json:"sport,omitempty" bson:"sport,omitempty" validate:"omitempty,min=2,max=50"`
	HourlyRate  float64   `json:"hourly_rate" bson:"hourly_rate" validate:"required,gt=0"`
	OpeningTime string    `json:"opening_time" bson:"opening_time" validate:"required"`
	ClosingTime string    `json:"closing_time" bson:"closing_time" validate:"required"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// CourtUpdate carries the patchable subset of Court fields. Nil/empty fields
// are left unchanged by the merge.
type CourtUpdate struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Sport       string   `json:"sport,omitempty" validate:"omitempty,min=2,max=50"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	OpeningTime string   `json:"opening_time,omitempty"`
	ClosingTime string   `json:"closing_time,omitempty"`
}
