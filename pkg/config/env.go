package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSlotLockTTL          = "SLOT_LOCK_TTL"
	EnvMaxPlayersPerBooking = "MAX_PLAYERS_PER_BOOKING"
	EnvDefaultOpeningTime   = "DEFAULT_OPENING_TIME"
	EnvDefaultClosingTime   = "DEFAULT_CLOSING_TIME"

	EnvBookingEventsTopic    = "BOOKING_EVENTS_TOPIC"
	EnvBookingEventsDLQTopic = "BOOKING_EVENTS_DLQ_TOPIC"
)
