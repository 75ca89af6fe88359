package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "photofeed.db", cfg.SQLitePath)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 72*time.Hour, cfg.SessionMaxAge)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("SESSION_MAX_AGE_HOURS", "1")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, time.Hour, cfg.SessionMaxAge)
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("SESSION_MAX_AGE_HOURS", "not-a-number")
	cfg := Load()
	assert.Equal(t, 72*time.Hour, cfg.SessionMaxAge)
}
