package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 150, cfg.StarCount)
	assert.Equal(t, 30*time.Minute, cfg.OrbitSessionTTL)
	assert.Equal(t, 10000, cfg.OrbitMaxSessions)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.False(t, cfg.SMTP.Configured())
	assert.True(t, cfg.Admin.UsingDefaults())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STAR_COUNT", "40")
	t.Setenv("ORBIT_SESSION_TTL", "5m")
	t.Setenv("ORBIT_MAX_SESSIONS", "250")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("TO_EMAIL", "inbox@example.com")
	t.Setenv("ADMIN_USERNAME", "zach")
	t.Setenv("ADMIN_PASSWORD", "hunter22")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 40, cfg.StarCount)
	assert.Equal(t, 5*time.Minute, cfg.OrbitSessionTTL)
	assert.Equal(t, 250, cfg.OrbitMaxSessions)
	assert.True(t, cfg.SMTP.Configured())
	assert.False(t, cfg.Admin.UsingDefaults())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STAR_COUNT", "lots")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STAR_COUNT", "-1")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("STAR_COUNT", "10")
	t.Setenv("GIN_MODE", "turbo")
	_, err = Load()
	assert.ErrorContains(t, err, "GIN_MODE")

	t.Setenv("GIN_MODE", "test")
	t.Setenv("ORBIT_MAX_SESSIONS", "0")
	_, err = Load()
	assert.ErrorContains(t, err, "ORBIT_MAX_SESSIONS")
}
