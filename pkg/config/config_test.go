package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/dashboard", cfg.APIPrefix)
	assert.Equal(t, "dev@dev.dev", cfg.Auth.Email)
	assert.Equal(t, "dev123", cfg.Auth.Password)
	assert.Equal(t, time.Second, cfg.Auth.LoginDelay)
	assert.Equal(t, SessionDriverCookie, cfg.Session.Driver)
	assert.Equal(t, 168*time.Hour, cfg.Session.TTL)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Exports.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadReadsEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SESSION_DRIVER", " Redis ")
	t.Setenv("AUTH_LOGIN_DELAY", "250ms")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, ,https://admin.example.com")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, SessionDriverRedis, cfg.Session.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Auth.LoginDelay)
	assert.Equal(t, 168*time.Hour, cfg.Session.TTL)
	assert.Equal(t, []string{"http://localhost:5173", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestNormalizeDriver(t *testing.T) {
	assert.Equal(t, SessionDriverMemory, normalizeDriver("MEMORY"))
	assert.Equal(t, SessionDriverCookie, normalizeDriver("file"))
	assert.Equal(t, SessionDriverCookie, normalizeDriver(""))
}
