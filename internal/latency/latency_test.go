package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNop_ReturnsImmediately(t *testing.T) {
	require.NoError(t, Nop().Wait(context.Background()))
}

func TestNop_PropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Nop().Wait(ctx), context.Canceled)
}

func TestFixed_WaitsRoughlyTheConfiguredDelay(t *testing.T) {
	start := time.Now()
	require.NoError(t, Fixed(20*time.Millisecond).Wait(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixed_AbortsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Fixed(time.Hour).Wait(ctx), context.Canceled)
}

func TestFixed_ZeroDelay(t *testing.T) {
	require.NoError(t, Fixed(0).Wait(context.Background()))
}
