package matrix

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/buildmatrix/src/ctxlog"
	"github.com/sofmeright/buildmatrix/src/platform"
	"github.com/sofmeright/buildmatrix/src/rules/targets"
)

func TestSweepKeepsHostOrder(t *testing.T) {
	hosts := []platform.Platform{platform.Linux, platform.Win64, platform.Mac}
	for _, limit := range []int{0, 1, 2, 8} {
		plans, err := Sweep(context.Background(), targets.StrategyGame{}, hosts, nil, limit)
		require.NoError(t, err)
		require.Len(t, plans, 3)
		for i, host := range hosts {
			assert.Equal(t, host, plans[i].Host, "limit %d", limit)
			assert.Equal(t, Resolve(targets.StrategyGame{}, host, nil), plans[i])
		}
	}
}

func TestSweepDuplicateHost(t *testing.T) {
	_, err := Sweep(context.Background(), targets.StrategyGame{},
		[]platform.Platform{platform.Mac, platform.Win64, platform.Mac}, nil, 0)
	require.ErrorIs(t, err, ErrDuplicateHost)
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, targets.StrategyGame{}, []platform.Platform{platform.Mac}, nil, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSweepEmpty(t *testing.T) {
	plans, err := Sweep(context.Background(), targets.StrategyGame{}, nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestSweepLogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, err := Sweep(ctx, targets.StrategyGame{}, []platform.Platform{platform.Linux}, nil, 0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "resolved host")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "host=Linux")
}
