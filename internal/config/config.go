package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Calendar CalendarConfig
	PubSub   PubSubConfig
	Push     PushConfig
	Dispatch DispatchConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	SlowQueryThreshold time.Duration
}

// CalendarConfig decides which calendar day "today" is when a client does
// not send its own date.
type CalendarConfig struct {
	Location *time.Location
}

type PubSubConfig struct {
	NatsURL         string
	GCloudProjectID string
}

type PushConfig struct {
	FirebaseCredentialsPath string
	FirebaseProjectID       string
}

// Enabled reports whether push delivery is configured.
func (c *PushConfig) Enabled() bool {
	return c.FirebaseCredentialsPath != ""
}

type DispatchConfig struct {
	Enabled    bool
	Schedule   string
	RunTimeout time.Duration
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("invalid .env file: %w", err)
	}

	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	slowQueryThreshold, err := time.ParseDuration(getEnv("DB_SLOW_QUERY_THRESHOLD", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SLOW_QUERY_THRESHOLD: %w", err)
	}

	location, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	dispatchEnabled, err := strconv.ParseBool(getEnv("DISPATCH_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPATCH_ENABLED: %w", err)
	}

	dispatchTimeout, err := time.ParseDuration(getEnv("DISPATCH_TIMEOUT", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPATCH_TIMEOUT: %w", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN environment variable is required")
	}

	slog.Debug("configuration loaded",
		"timezone", location.String(),
		"dispatch_enabled", dispatchEnabled,
	)

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: DatabaseConfig{
			DSN:                dsn,
			MaxOpenConns:       maxOpenConns,
			MaxIdleConns:       maxIdleConns,
			ConnMaxLifetime:    connMaxLifetime,
			SlowQueryThreshold: slowQueryThreshold,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Calendar: CalendarConfig{
			Location: location,
		},
		PubSub: PubSubConfig{
			NatsURL:         os.Getenv("NATS_URL"),
			GCloudProjectID: os.Getenv("GCLOUD_PROJECT_ID"),
		},
		Push: PushConfig{
			FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
			FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		},
		Dispatch: DispatchConfig{
			Enabled:    dispatchEnabled,
			Schedule:   getEnv("DISPATCH_SCHEDULE", "0 8 * * *"),
			RunTimeout: dispatchTimeout,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
