package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Share link store backends.
const (
	ShareLinkStoreFile  = "file"
	ShareLinkStoreRedis = "redis"
)

var (
	ErrMissingSecret      = errors.New("AUTH_JWT_SECRET is not set")
	ErrMissingCredentials = errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is not set")
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App        AppConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	ShareLinks ShareLinkConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret          string
	AdminUsername      string
	AdminPassword      string
	AdminPasswordHash  string
	SessionTTLHours    int
	LoginMaxAttempts   int
	LoginWindowSeconds int
}

// ShareLinkConfig selects where revocable share links are persisted.
type ShareLinkConfig struct {
	Store    string
	FilePath string
	RedisKey string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	store := getEnv("SHARE_LINK_STORE", ShareLinkStoreFile)
	if store != ShareLinkStoreFile && store != ShareLinkStoreRedis {
		return nil, fmt.Errorf("invalid SHARE_LINK_STORE %q", store)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "badr-studio"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:          os.Getenv("AUTH_JWT_SECRET"),
			AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
			AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
			SessionTTLHours:    getEnvAsInt("AUTH_SESSION_TTL_HOURS", 12),
			LoginMaxAttempts:   getEnvAsInt("AUTH_LOGIN_MAX_ATTEMPTS", 10),
			LoginWindowSeconds: getEnvAsInt("AUTH_LOGIN_WINDOW_SECONDS", 60),
		},
		ShareLinks: ShareLinkConfig{
			Store:    store,
			FilePath: getEnv("SHARE_LINKS_FILE", "data/share-links.json"),
			RedisKey: getEnv("SHARE_LINKS_REDIS_KEY", "share_links"),
		},
	}

	return cfg, nil
}

// Validate reports missing secrets. Callers decide whether to abort or run degraded.
func (a AuthConfig) Validate() error {
	var errs []error
	if a.JWTSecret == "" {
		errs = append(errs, ErrMissingSecret)
	}
	if a.AdminPassword == "" && a.AdminPasswordHash == "" {
		errs = append(errs, ErrMissingCredentials)
	}
	return errors.Join(errs...)
}

// SessionTTL returns the admin session lifetime.
func (a AuthConfig) SessionTTL() time.Duration {
	if a.SessionTTLHours <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(a.SessionTTLHours) * time.Hour
}

// LoginWindow returns the rate limiting window for admin logins.
func (a AuthConfig) LoginWindow() time.Duration {
	if a.LoginWindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(a.LoginWindowSeconds) * time.Second
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
