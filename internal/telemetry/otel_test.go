package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.Nil(t, p.Middleware())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_Enabled(t *testing.T) {
	// The gRPC exporter connects lazily, so no collector is needed here.
	p, err := New(context.Background(), &Config{
		Enabled:      true,
		Endpoint:     "localhost:4317",
		ServiceName:  "portfolio-test",
		Version:      "test",
		Environment:  "test",
		SamplingRate: 1,
	})
	require.NoError(t, err)

	assert.True(t, p.Enabled())
	assert.NotNil(t, p.Middleware())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}

func TestProvider_NilSafe(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.Nil(t, p.Middleware())
	assert.NoError(t, p.Shutdown(context.Background()))
}
