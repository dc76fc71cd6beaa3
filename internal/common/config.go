package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Pipeline PipelineConfig
	Matching MatchingConfig
	Watchdog WatchdogConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// PipelineConfig holds extraction/session-processing configuration
type PipelineConfig struct {
	MaxUploadBytes    int64
	SessionRetention  time.Duration
	StrictRegionCodes bool
	// InlineMatching runs the matching stage in the ingress goroutine instead
	// of handing the session id to the worker queue.
	InlineMatching bool
	StoreRetries   int
	StoreBackoff   time.Duration
}

// MatchingConfig holds matching-engine configuration
type MatchingConfig struct {
	DateToleranceDays int
	Workers           int
	QueueSize         int
	TaskTimeout       time.Duration
}

// WatchdogConfig holds stuck-session watchdog configuration
type WatchdogConfig struct {
	Timeout  time.Duration
	Interval time.Duration
}

// IngestConfig holds filesystem inbox configuration
type IngestConfig struct {
	InboxDir string
	Debounce time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Pipeline: PipelineConfig{
			MaxUploadBytes:    getEnvAsInt64("MAX_UPLOAD_BYTES", 300<<20),
			SessionRetention:  getEnvAsDuration("SESSION_RETENTION", 7*24*time.Hour),
			StrictRegionCodes: getEnvAsBool("STRICT_REGION_CODES", false),
			InlineMatching:    getEnvAsBool("INLINE_MATCHING", false),
			StoreRetries:      getEnvAsInt("STORE_WRITE_RETRIES", 3),
			StoreBackoff:      getEnvAsDuration("STORE_WRITE_BACKOFF", 500*time.Millisecond),
		},
		Matching: MatchingConfig{
			DateToleranceDays: getEnvAsInt("MATCH_DATE_TOLERANCE_DAYS", 3),
			Workers:           getEnvAsInt("MATCH_WORKERS", 4),
			QueueSize:         getEnvAsInt("MATCH_QUEUE_SIZE", 256),
			TaskTimeout:       getEnvAsDuration("MATCH_TASK_TIMEOUT", 3*time.Minute),
		},
		Watchdog: WatchdogConfig{
			Timeout:  getEnvAsDuration("WATCHDOG_TIMEOUT", 5*time.Minute),
			Interval: getEnvAsDuration("WATCHDOG_INTERVAL", 30*time.Second),
		},
		Ingest: IngestConfig{
			InboxDir: getEnv("INBOX_DIR", ""),
			Debounce: getEnvAsDuration("INBOX_DEBOUNCE", 2*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Pipeline.MaxUploadBytes <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_UPLOAD_BYTES must be positive", ErrInvalidInput)
	}
	if c.Matching.DateToleranceDays < 0 {
		return NewAppError("CONFIG_ERROR", "MATCH_DATE_TOLERANCE_DAYS must not be negative", ErrInvalidInput)
	}
	if c.Watchdog.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "WATCHDOG_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
