package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Annotations  AnnotationsConfig  `mapstructure:"annotations"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
	Security     SecurityConfig     `mapstructure:"security"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Features     FeaturesConfig     `mapstructure:"features"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
	Verbose               bool          `mapstructure:"verbose"`
}

// AuthConfig contains identity-provider token validation and attempt
// limiting settings
type AuthConfig struct {
	JWKSURL       string        `mapstructure:"jwks_url"`
	DevBypass     bool          `mapstructure:"dev_bypass"`
	DevToken      string        `mapstructure:"dev_token"`
	MaxAttempts   int           `mapstructure:"max_attempts"`
	AttemptWindow time.Duration `mapstructure:"attempt_window"`
	LockoutWindow time.Duration `mapstructure:"lockout_window"`
}

// StorageConfig contains object storage settings
type StorageConfig struct {
	URL              string `mapstructure:"url"`
	ServiceKey       string `mapstructure:"service_key"`
	MediaBucket      string `mapstructure:"media_bucket"`
	RecordingsBucket string `mapstructure:"recordings_bucket"`
	MaxUploadBytes   int64  `mapstructure:"max_upload_bytes"`
}

// AnnotationsConfig contains annotation settings
type AnnotationsConfig struct {
	MaxNoteLength int `mapstructure:"max_note_length"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled   bool           `mapstructure:"enabled"`
	Endpoints map[string]int `mapstructure:"endpoints"`
}

// SecurityConfig contains security-related settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// FeaturesConfig contains feature flags
type FeaturesConfig struct {
	EnableNotifications bool `mapstructure:"enable_notifications"`
	EnableRecordings    bool `mapstructure:"enable_recordings"`
	MaintenanceMode     bool `mapstructure:"maintenance_mode"`
}
