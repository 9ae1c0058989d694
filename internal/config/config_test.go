package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "lifelink-api", c.App.Name)
	assert.Equal(t, "development", c.App.Environment)
	assert.Equal(t, "0.0.0.0:3001", c.Server.Address())
	assert.Equal(t, 30*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.False(t, c.Tracing.Enabled)
	assert.Equal(t, []string{"*"}, c.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, c.CORS.AllowedMethods)
	assert.Equal(t, []string{"Content-Type"}, c.CORS.AllowedHeaders)
	assert.True(t, c.CORS.AllowCredentials)
	assert.Equal(t, 50.0, c.RateLimit.RequestsPerSecond)
	assert.Empty(t, c.Seed.File)
	assert.Empty(t, c.Server.TrustedProxies)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_RATE", "0.25")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://app.lifelink.health , ,https://admin.lifelink.health")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("SEED_FILE", "/etc/lifelink/seed.yaml")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, c.Server.Port)
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Tracing.Enabled)
	assert.Equal(t, 0.25, c.Tracing.SampleRate)
	assert.Equal(t, []string{"https://app.lifelink.health", "https://admin.lifelink.health"}, c.CORS.AllowedOrigins)
	assert.Zero(t, c.RateLimit.RequestsPerSecond)
	assert.Equal(t, "/etc/lifelink/seed.yaml", c.Seed.File)
	assert.Equal(t, 3*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, c.Server.TrustedProxies)
}

func TestLoad_PortPrecedence(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, c.Server.Port)

	t.Setenv("PORT", "9100")
	c, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, c.Server.Port)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("SERVER_IDLE_TIMEOUT", "soon")
	t.Setenv("TRACING_ENABLED", "maybe")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, c.Server.Port)
	assert.Equal(t, 60*time.Second, c.Server.IdleTimeout)
	assert.False(t, c.Tracing.Enabled)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"port", map[string]string{"PORT": "70000"}, "out of range"},
		{"log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"sample rate", map[string]string{"TRACING_SAMPLE_RATE": "1.5"}, "TRACING_SAMPLE_RATE"},
		{"negative rps", map[string]string{"RATE_LIMIT_RPS": "-1"}, "RATE_LIMIT_RPS"},
		{"burst", map[string]string{"RATE_LIMIT_RPS": "5", "RATE_LIMIT_BURST": "0"}, "RATE_LIMIT_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			c, err := Load()
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
