package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/config"
)

func TestInit_Disabled(t *testing.T) {
	tp, err := Init(context.Background(), config.TracingConfig{Enabled: false}, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	assert.Same(t, tp, otel.GetTracerProvider())
}

func TestInit_Enabled(t *testing.T) {
	tp, err := Init(context.Background(), config.TracingConfig{
		Enabled:     true,
		ServiceName: "lifelink-api",
		Endpoint:    "http://127.0.0.1:4318/v1/traces",
		SampleRate:  1,
	}, "1.2.3")
	require.NoError(t, err)
	require.NotNil(t, tp)

	assert.NoError(t, tp.Shutdown(context.Background()))
}
