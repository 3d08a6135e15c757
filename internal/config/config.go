package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	Events     EventsConfig
	Invitation InvitationConfig
	JWT        JWTConfig
	App        AppConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig holds the event stream connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// EventsConfig names the streams and the consumer group. Topic names
// are deployment details; the consumer group gives the registry
// service its own delivery cursor.
type EventsConfig struct {
	InvitationTopic string
	UserTopic       string
	ConsumerGroup   string
}

// InvitationConfig holds invitation lifecycle settings
type InvitationConfig struct {
	Retention     time.Duration // how long a PENDING invitation stays valid
	SweepSchedule string        // cron spec for the expiry sweep
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "membership"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Event stream configuration
	config.Events = EventsConfig{
		InvitationTopic: getEnv("EVENTS_INVITATION_TOPIC", "invitation-events"),
		UserTopic:       getEnv("EVENTS_USER_TOPIC", "user-events"),
		ConsumerGroup:   getEnv("EVENTS_CONSUMER_GROUP", "registry-service"),
	}

	// Invitation lifecycle configuration
	retention, err := time.ParseDuration(getEnv("INVITATION_RETENTION", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid INVITATION_RETENTION: %w", err)
	}

	config.Invitation = InvitationConfig{
		Retention:     retention,
		SweepSchedule: getEnv("INVITATION_SWEEP_SCHEDULE", "0 2 * * *"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Invitation.Retention <= 0 {
		return fmt.Errorf("INVITATION_RETENTION must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
