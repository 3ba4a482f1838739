package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	Server    ServerConfig
	Invoice   InvoiceConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Audit     AuditConfig
	APIKey    string
	LogFile   string
	// Env is "production" or anything else.
	Env       string
}

type ServerConfig struct {
	Host string
	Port string
	// PublicHost and PublicPort are what payers see in the QR callback URL.
	PublicHost string
	PublicPort string
}

type InvoiceConfig struct {
	MinAmount          int64
	MaxAmount          int64
	TTL                time.Duration
	MaxTokenIterations int
	LocalOffset        time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type AuditConfig struct {
	DSN string
}

// Enabled reports whether the audit trail has a database to write to.
func (a AuditConfig) Enabled() bool {
	return a.DSN != ""
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load builds a Config from the environment.
func Load() *Config {
	host := GetEnv("HOST", "localhost")
	port := GetEnv("PORT", "3000")

	return &Config{
		Server: ServerConfig{
			Host:       host,
			Port:       port,
			PublicHost: GetEnv("PUBLIC_HOST", host),
			PublicPort: GetEnv("PUBLIC_PORT", port),
		},
		Invoice: InvoiceConfig{
			MinAmount:          int64(GetIntEnv("INVOICE_MIN_AMOUNT", 10_000)),
			MaxAmount:          int64(GetIntEnv("INVOICE_MAX_AMOUNT", 2_000_000)),
			TTL:                GetDurationEnv("INVOICE_TTL", 30*time.Minute),
			MaxTokenIterations: GetIntEnv("TOKEN_MAX_ITERATIONS", 10_000),
			LocalOffset:        time.Duration(GetIntEnv("LOCAL_OFFSET_HOURS", 7)) * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     GetEnv("REDIS_ADDR", ""),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Max:    GetIntEnv("RATE_LIMIT_MAX", 60),
			Window: GetDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		},
		Audit: AuditConfig{
			DSN: GetEnv("AUDIT_DATABASE_DSN", ""),
		},
		APIKey:  GetEnv("API_KEY", ""),
		LogFile: GetEnv("LOG_FILE", ""),
		Env:     GetEnv("ENV", "development"),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv parses a Go duration string ("30m", "1h") or falls back.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction turns off terminal QR dumps and colored SQL logs.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
