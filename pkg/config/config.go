package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"
)

var (
	once        sync.Once
	initErr     error
	initialized atomic.Bool
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("VOICELAB")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
			return
		}

		initialized.Store(true)
	})

	return initErr
}

// IsInitialized reports whether Init has completed successfully.
func IsInitialized() bool {
	return initialized.Load()
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		// Database is optional, so we don't return an error
		// but we log a warning
		fmt.Println("Warning: No database path configured")
	}

	// Validate credentials aren't using placeholder values
	if err := validateCredentials(); err != nil {
		return err
	}

	// Auto-correct invalid attempt limiter settings
	if viper.GetInt("auth.max_attempts") <= 0 {
		viper.Set("auth.max_attempts", 5)
	}
	if viper.GetDuration("auth.lockout_window") <= 0 {
		viper.Set("auth.lockout_window", 15*time.Minute)
	}

	return nil
}

// validateCredentials validates that external service credentials are not
// using placeholder values
func validateCredentials() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_SECRET_HERE",
		"YOUR_API_KEY",
		"YOUR_SERVICE_KEY",
		"changeme",
		"CHANGEME",
	}

	// Check Supabase storage service key
	storageKey := viper.GetString("storage.service_key")
	for _, placeholder := range placeholders {
		if storageKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid storage service key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: storage service key is using a placeholder value")
			break
		}
	}

	// Check JWKS URL
	jwksURL := viper.GetString("auth.jwks_url")
	if jwksURL == "" && isProduction && !viper.GetBool("auth.dev_bypass") {
		return fmt.Errorf("auth.jwks_url is required in production")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.MaxAttempts <= 0 {
		c.Auth.MaxAttempts = 5
	}
	if c.Auth.LockoutWindow <= 0 {
		c.Auth.LockoutWindow = 15 * time.Minute
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/voicelab.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)
	viper.SetDefault("database.verbose", false)

	// Auth defaults (Supabase GoTrue JWKS)
	viper.SetDefault("auth.jwks_url", "")
	viper.SetDefault("auth.dev_bypass", false)
	viper.SetDefault("auth.dev_token", "")
	viper.SetDefault("auth.max_attempts", 5)
	viper.SetDefault("auth.attempt_window", 1*time.Minute)
	viper.SetDefault("auth.lockout_window", 15*time.Minute)

	// Storage defaults (Supabase Storage)
	viper.SetDefault("storage.url", "")
	viper.SetDefault("storage.service_key", "")
	viper.SetDefault("storage.media_bucket", "lesson-media")
	viper.SetDefault("storage.recordings_bucket", "practice-recordings")
	viper.SetDefault("storage.max_upload_bytes", 52428800)

	// Annotation defaults
	viper.SetDefault("annotations.max_note_length", 500)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints", map[string]int{
		"annotations":   20,
		"media":         10,
		"recordings":    10,
		"notifications": 20,
		"default":       120,
	})

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")

	// Features defaults
	viper.SetDefault("features.enable_notifications", true)
	viper.SetDefault("features.enable_recordings", true)
	viper.SetDefault("features.maintenance_mode", false)
}
