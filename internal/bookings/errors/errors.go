package errors

import "errors"

var (
	ErrNotFound        = errors.New("booking not found")
	ErrCourtNotFound   = errors.New("court not found")
	ErrInvalidID       = errors.New("invalid booking id")
	ErrSlotTaken       = errors.New("slot already booked")
	ErrLockHeld        = errors.New("slot lock held by another request")
	ErrStatusChanged   = errors.New("booking status changed concurrently")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrInvalidDocument = errors.New("invalid booking document")
)
