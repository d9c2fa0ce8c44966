package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	RabbitMQ RabbitMQConfig
	JWT      JWTConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Bookings BookingsConfig
	Search   SearchConfig
	SMS      SMSConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// BrokerConfig selects the event transport used for booking events
type BrokerConfig struct {
	Type string // nats, nsq or rabbitmq
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress    string
	LookupdAddress string
	Channel        string
	MaxInFlight    int
}

// RabbitMQConfig contains RabbitMQ connection configuration
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains Zap logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// BookingsConfig contains booking workflow settings
type BookingsConfig struct {
	// EmptyAsNotFound answers empty booking and ride listings with 404
	// instead of 200 and an empty array.
	EmptyAsNotFound bool
	RateLimit       int
	RateLimitPeriod time.Duration
}

// SearchConfig contains ride search cache settings
type SearchConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// SMSConfig contains SMS provider configuration for the notifier
type SMSConfig struct {
	Provider           string // twilio, sns or log
	FromNumber         string
	TwilioAccountSID   string
	TwilioAuthToken    string
	AWSRegion          string
	SenderID           string
	DefaultCountryCode string
	MaxRetries         int
	BaseDelay          time.Duration
}
