package kafka

import "errors"

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrConsumerClosed = errors.New("kafka consumer is closed")
	ErrInvalidMessage = errors.New("invalid message")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")

	// ErrPermanentFailure marks handler errors that must go straight to the
	// DLQ without retrying.
	ErrPermanentFailure = errors.New("permanent failure")
)

// ShouldRetry reports whether a failed handler invocation should be retried.
func ShouldRetry(err error, retries, maxRetries int) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrPermanentFailure) {
		return false
	}
	return retries < maxRetries
}
