package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/config"
)

var app = config.AppConfig{Name: "lifelink-api", Environment: "test", Version: "1.2.3"}

func TestNew_WritesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")

	log, err := New(config.LogConfig{Level: "info", Format: "json", OutputPath: out}, app)
	require.NoError(t, err)

	log.Info("vitals updated", zap.Duration("latency", 1500*time.Microsecond))
	log.Debug("dropped below level")
	require.NoError(t, log.Sync())

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "vitals updated", entry["message"])
	assert.Equal(t, "lifelink-api", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "1.2.3", entry["version"])
	assert.Equal(t, 1.5, entry["latency"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "json", OutputPath: "stdout"}, app)
	assert.ErrorContains(t, err, "invalid log level")
}
