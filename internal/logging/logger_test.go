package logging_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz/internal/logging"
)

func TestNew_LevelGate(t *testing.T) {
	l := logging.New(slog.LevelWarn)
	ctx := context.Background()
	assert.False(t, l.Enabled(ctx, slog.LevelInfo))
	assert.True(t, l.Enabled(ctx, slog.LevelError))
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	l := logging.NewNop()
	require.NotNil(t, l)
	l.Info("dropped", logging.RunID("abc"))
}

func TestAttrHelpers(t *testing.T) {
	a := logging.Err(errors.New("boom"))
	assert.Equal(t, "err", a.Key)

	assert.Equal(t, "run_id", logging.RunID("x").Key)
	assert.Equal(t, "algo", logging.Algo("bubble").Key)
	assert.Equal(t, "speed", logging.Speed(5).Key)
	assert.Equal(t, int64(5), logging.Speed(5).Value.Int64())
}
