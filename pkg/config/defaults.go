package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "courtly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 20
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSlotLockTTL          = 10 * time.Second
	DefaultMaxPlayersPerBooking = 22
	DefaultDefaultOpeningTime   = "08:00"
	DefaultDefaultClosingTime   = "23:00"

	DefaultBookingEventsTopic    = "booking.events"
	DefaultBookingEventsDLQTopic = "booking.events.dlq"

	DefaultPaginationLimit = 100
)
