package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Dispatch DispatchConfig
	Logger   LoggerConfig
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

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT actor-extraction configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// DispatchConfig carries the business timing windows and matching bounds.
// These are operational knobs, not invariants; defaults follow the production
// values (5m ping staleness, 2m assignment expiry, 2m/1m cancel grace, 3m
// passenger finish wait, 3 km opportunistic radius, 50-ride candidate window).
type DispatchConfig struct {
	PingMaxAge           time.Duration
	AssignmentExpiry     time.Duration
	CancelGraceAccepted  time.Duration
	CancelGraceStarted   time.Duration
	PassengerFinishAfter time.Duration
	MatchRadiusKm        float64
	MatchCandidateLimit  int
}
