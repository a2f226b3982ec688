package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:9000/")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("ALLOW_ORIGINS", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.BackendURL)
	assert.Equal(t, StoreMemory, cfg.SessionStore)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, "lifecare_session", cfg.CookieName)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("SESSION_STORE", "etcd")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("SESSION_TTL", "soon")
	_, err = FromEnv()
	assert.Error(t, err)

	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_STORE", "postgres")
	t.Setenv("POSTGRES_URL", "")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestFromEnvOrigins(t *testing.T) {
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ALLOW_ORIGINS", "http://localhost:3000, https://lifecare.example")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://lifecare.example"}, cfg.AllowOrigins)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}
