package errors

import "errors"

var (
	ErrNotFound  = errors.New("court not found")
	ErrInvalidID = errors.New("invalid court id")
)
