package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string
	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	ServerHost  string
	ServerPort  string
	Environment string

	CORSAllowedOrigins []string

	RedisURL         string
	RateLimitEnabled bool

	AdminEmail    string
	AdminPassword string

	LogLevel  string
	LogFormat string
}

var (
	ErrMissingDatabaseURL   = errors.New("DATABASE_URL is required")
	ErrMissingAccessSecret  = errors.New("JWT_ACCESS_SECRET is required")
	ErrMissingRefreshSecret = errors.New("JWT_REFRESH_SECRET is required")
	ErrSharedTokenSecret    = errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	ErrMissingAdminSeed     = errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	ErrInvalidTokenTTL      = errors.New("invalid token TTL format")
)

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTAccessSecret:    os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:   os.Getenv("JWT_REFRESH_SECRET"),
		ServerHost:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
		ServerPort:         getEnvOrDefault("SERVER_PORT", "5000"),
		Environment:        getEnvOrDefault("ENV", "development"),
		CORSAllowedOrigins: parseAllowedOrigins(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173")),
		RedisURL:           getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		RateLimitEnabled:   getEnvOrDefaultBool("RATE_LIMIT_ENABLED", true),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.JWTAccessSecret == "" {
		return nil, ErrMissingAccessSecret
	}
	if cfg.JWTRefreshSecret == "" {
		return nil, ErrMissingRefreshSecret
	}
	// The two token classes must never share a signing key, otherwise a
	// refresh token would verify as an access token.
	if cfg.JWTAccessSecret == cfg.JWTRefreshSecret {
		return nil, ErrSharedTokenSecret
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, ErrMissingAdminSeed
	}

	accessTokenTTL, err := parseTokenTTL(getEnvOrDefault("ACCESS_TOKEN_TTL", "900"))
	if err != nil {
		return nil, ErrInvalidTokenTTL
	}
	cfg.AccessTokenTTL = accessTokenTTL

	refreshTokenTTL, err := parseTokenTTL(getEnvOrDefault("REFRESH_TOKEN_TTL", "604800"))
	if err != nil {
		return nil, ErrInvalidTokenTTL
	}
	cfg.RefreshTokenTTL = refreshTokenTTL

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func parseTokenTTL(value string) (time.Duration, error) {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

func parseAllowedOrigins(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		// trailing slashes break exact-origin matching
		trimmed := strings.TrimSuffix(strings.TrimSpace(p), "/")
		if trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
