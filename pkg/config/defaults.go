package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "tripwise"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultEnvironment = "development"

	// DefaultTokenTTL matches the 30-day access token the API issues.
	DefaultTokenTTL = 720 * time.Hour

	DefaultBcryptCost = 10

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaBookingEventsTopic = "booking-events"
	DefaultKafkaConsumerGroup      = "tripwise-notifier"

	DefaultCatalogCacheTTL = 5 * time.Minute
)
