package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("LEAD_RATE_LIMIT_WINDOW_SEC", "60")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("MINIO_USE_SSL")
		os.Unsetenv("LEAD_RATE_LIMIT_WINDOW_SEC")
	}()

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
}

func TestConfigured(t *testing.T) {
	assert.False(t, DatabaseConfig{}.Configured())
	assert.True(t, DatabaseConfig{Host: "h", User: "u", Name: "n"}.Configured())

	assert.False(t, MinIOConfig{Endpoint: "localhost:9000"}.Configured())
	assert.True(t, MinIOConfig{
		Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "lead-files",
	}.Configured())

	assert.False(t, RedisConfig{}.Configured())
	assert.True(t, RedisConfig{Addr: "localhost:6379"}.Configured())

	assert.False(t, EmailConfig{}.Configured())
	assert.True(t, EmailConfig{Region: "us-east-1"}.Configured())
}

func TestProduction(t *testing.T) {
	cfg := &AppConfig{Env: "development"}
	assert.False(t, cfg.Production())

	cfg.Env = "production"
	assert.True(t, cfg.Production())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
