package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "REDIS_ADDR", "REDIS_DB", "HTTP_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestDSNFromFields(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "orders",
		DBPassword: "secret",
		DBName:     "shop",
		SSLMode:    "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=orders password=secret dbname=shop sslmode=require",
		cfg.DSN())
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL: "postgres://u:p@host:5432/shop",
		DBHost:      "ignored",
	}

	assert.Equal(t, "postgres://u:p@host:5432/shop", cfg.DSN())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@host:5432/shop")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@host:5432/shop", cfg.DatabaseURL)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoadIgnoresBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.RedisDB)
}
