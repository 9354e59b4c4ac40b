package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Configured reports whether enough settings are present to attempt a
// connection. The service runs without a database: submissions are then
// logged instead of persisted.
func (c DatabaseConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Name != ""
}

// MinIOConfig holds object storage settings for lead attachments and resumes.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (c MinIOConfig) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

// RedisConfig holds settings for the content blob store backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) Configured() bool {
	return c.Addr != ""
}

// EmailConfig holds transactional email settings. When Region is empty the
// dispatcher degrades to console logging.
type EmailConfig struct {
	Region         string
	From           string
	CareersFrom    string
	NotificationTo string
	CareersTo      string
}

func (c EmailConfig) Configured() bool {
	return c.Region != ""
}

// RateLimitConfig controls the fixed-window limiter on the public lead route.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Absence of any optional
// integration's variables degrades that integration, never startup.
type AppConfig struct {
	Env        string
	Port       string
	SiteURL    string
	ContentDir string

	LogLevel  string
	LogFormat string

	AdminPassword      string
	TurnstileSecret    string
	RevalidationSecret string

	Database  DatabaseConfig
	MinIO     MinIOConfig
	Redis     RedisConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

// Production reports whether the app runs with production semantics
// (secure cookies, fail-closed content writes without a backing store).
func (c *AppConfig) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Env:        getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		SiteURL:    getEnv("SITE_URL", "https://fiberguysllc.com"),
		ContentDir: getEnv("CONTENT_DIR", "content"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		TurnstileSecret:    getEnv("TURNSTILE_SECRET_KEY", ""),
		RevalidationSecret: getEnv("REVALIDATION_SECRET", ""),

		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "lead-files"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Email: EmailConfig{
			Region:         getEnv("AWS_SES_REGION", ""),
			From:           getEnv("EMAIL_FROM", "Fiber Guys Dispatch <dispatch@fiberguysllc.com>"),
			CareersFrom:    getEnv("EMAIL_CAREERS_FROM", "Fiber Guys Careers <dispatch@fiberguysllc.com>"),
			NotificationTo: getEnv("NOTIFICATION_EMAIL", "info@fiberguysllc.com"),
			CareersTo:      getEnv("CAREERS_EMAIL", "careers@fiberguysllc.com"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getEnvInt("LEAD_RATE_LIMIT_MAX", 5),
			Window:      time.Duration(getEnvInt("LEAD_RATE_LIMIT_WINDOW_SEC", 3600)) * time.Second,
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
