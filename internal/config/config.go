package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

var ErrInvalidKVBackend = errors.New("invalid kv backend")

// KV backends supported by the store package
const (
	KVBackendPostgres = "postgres"
	KVBackendRedis    = "redis"
	KVBackendDynamoDB = "dynamodb"
	KVBackendMemory   = "memory"
)

// Mail providers supported by the mail client package
const (
	MailProviderResend = "resend"
	MailProviderSES    = "ses"
)

// Config holds all application configuration
type Config struct {
	KV         KVConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	AWS        AWSConfig
	Auth       AuthConfig
	Portal     PortalConfig
	Storage    StorageConfig
	Services   ServicesConfig
	RateLimit  RateLimitConfig
	Dispatcher DispatcherConfig
	Server     ServerConfig
}

// KVConfig selects the key-value backend
type KVConfig struct {
	Backend string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AWSConfig holds AWS settings shared by DynamoDB, S3 and SES
type AWSConfig struct {
	Region          string
	DynamoDBTable   string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the service endpoint, e.g. for MinIO or LocalStack
	Endpoint string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret            string
	AnonKey              string
	DefaultAdminPassword string
}

// PortalConfig holds dashboard settings
type PortalConfig struct {
	DashboardPIN string
}

// StorageConfig holds object storage settings for uploaded documents
type StorageConfig struct {
	Bucket         string
	SignedURLTTL   time.Duration
	UploadMaxBytes int64
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	MailProvider       string
	ResendAPIKey       string
	DefaultEmailSender string
	WebAppURI          string
	// TurnstileSecretKey enables the captcha check on public registration when set
	TurnstileSecretKey string
}

// RateLimitConfig holds limits for public endpoints
type RateLimitConfig struct {
	RequestsPerMinute int
}

// DispatcherConfig holds notification dispatcher settings
type DispatcherConfig struct {
	Interval  time.Duration
	BatchSize int
	Workers   int
	// InProcess runs the dispatcher inside the API server as well as cmd/worker
	InProcess bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}
	var err error

	// KV configuration
	cfg.KV.Backend = getEnvWithDefault("KV_BACKEND", KVBackendPostgres)
	switch cfg.KV.Backend {
	case KVBackendPostgres:
		if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
			return nil, err
		}
		if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
			return nil, err
		}
		if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
			return nil, err
		}
		if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
			return nil, err
		}
	case KVBackendDynamoDB:
		if cfg.AWS.DynamoDBTable, err = requireEnv("DYNAMODB_TABLE"); err != nil {
			return nil, err
		}
	case KVBackendRedis, KVBackendMemory:
	default:
		return nil, fmt.Errorf("KV_BACKEND=%q: %w", cfg.KV.Backend, ErrInvalidKVBackend)
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true" || cfg.KV.Backend == KVBackendRedis
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	cfg.AWS.Region = getEnvWithDefault("AWS_REGION", "me-central-1")
	cfg.AWS.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.AWS.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	cfg.AWS.Endpoint = os.Getenv("AWS_ENDPOINT_URL")

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.AnonKey, err = requireEnv("ANON_KEY"); err != nil {
		return nil, err
	}
	cfg.Auth.DefaultAdminPassword = getEnvWithDefault("DEFAULT_ADMIN_PASSWORD", "super123")

	cfg.Portal.DashboardPIN = getEnvWithDefault("DASHBOARD_PIN", "1234")

	// Storage configuration
	if cfg.Storage.Bucket, err = requireEnv("STORAGE_BUCKET"); err != nil {
		return nil, err
	}
	// SigV4 presigned URLs are capped at 7 days
	if cfg.Storage.SignedURLTTL, err = time.ParseDuration(getEnvWithDefault("SIGNED_URL_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("failed to parse SIGNED_URL_TTL: %w", err)
	}
	if cfg.Storage.UploadMaxBytes, err = strconv.ParseInt(getEnvWithDefault("UPLOAD_MAX_BYTES", "10485760"), 10, 64); err != nil {
		return nil, fmt.Errorf("failed to parse UPLOAD_MAX_BYTES: %w", err)
	}

	// Services configuration
	cfg.Services.MailProvider = getEnvWithDefault("MAIL_PROVIDER", MailProviderResend)
	if cfg.Services.MailProvider == MailProviderResend {
		if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
			return nil, err
		}
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	cfg.Services.TurnstileSecretKey = os.Getenv("TURNSTILE_SECRET_KEY")

	if cfg.RateLimit.RequestsPerMinute, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_RPM", "30")); err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_RPM: %w", err)
	}

	// Dispatcher configuration
	if cfg.Dispatcher.Interval, err = time.ParseDuration(getEnvWithDefault("DISPATCH_INTERVAL", "30s")); err != nil {
		return nil, fmt.Errorf("failed to parse DISPATCH_INTERVAL: %w", err)
	}
	if cfg.Dispatcher.BatchSize, err = strconv.Atoi(getEnvWithDefault("DISPATCH_BATCH", "50")); err != nil {
		return nil, fmt.Errorf("failed to parse DISPATCH_BATCH: %w", err)
	}
	if cfg.Dispatcher.Workers, err = strconv.Atoi(getEnvWithDefault("DISPATCH_WORKERS", "4")); err != nil {
		return nil, fmt.Errorf("failed to parse DISPATCH_WORKERS: %w", err)
	}
	cfg.Dispatcher.InProcess = getEnvWithDefault("DISPATCH_IN_PROCESS", "false") == "true"

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns the Redis host:port address
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
