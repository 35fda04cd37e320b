package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Notices  NoticeConfig
}

// AppConfig holds HTTP server and pharmacy settings
type AppConfig struct {
	Environment    string
	Port           string
	PharmacyName   string
	Location       *time.Location
	RequestTimeout time.Duration
}

// StoreConfig selects where dashboard state is persisted: memory, redis or postgres.
type StoreConfig struct {
	Driver    string
	KeyPrefix string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type NoticeConfig struct {
	Channel  string
	FeedSize int
}

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Load loads configuration from a .env file, if present, and environment variables
func Load() (*Config, error) {
	// It's okay if .env doesn't exist in production
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Environment:    getEnv("APP_ENV", "production"),
			Port:           getEnv("PORT", "8080"),
			PharmacyName:   getEnv("PHARMACY_NAME", "Jeevanline Pharmacy"),
			Location:       loc,
			RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT", 5)) * time.Second,
		},
		Store: StoreConfig{
			Driver:    getEnv("STORE_DRIVER", DriverMemory),
			KeyPrefix: getEnv("STORE_KEY_PREFIX", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "pharmacy"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Notices: NoticeConfig{
			Channel:  getEnv("NOTICE_CHANNEL", ""),
			FeedSize: getEnvInt("NOTICE_FEED_SIZE", 50),
		},
	}

	switch cfg.Store.Driver {
	case DriverMemory, DriverRedis, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}

	return cfg, nil
}

func (c *AppConfig) Development() bool {
	return c.Environment == "development"
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// GetURL returns the connection string in URL form, as the migration driver expects
func (c *DatabaseConfig) GetURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		// Use default value
		return fallback
	}
	return n
}
