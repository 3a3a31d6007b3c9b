package headless

import (
	"context"
	"testing"
	"time"

	"shape-studio/log"
	"shape-studio/services/generator"
	"shape-studio/services/scene"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Initialize(true)
	defer log.Close()
	m.Run()
}

func TestRunner_SpawnsExactlyTheCap(t *testing.T) {
	req := require.New(t)
	mock := generator.NewMockShapeGenerator()

	runner := NewRunner(mock, scene.NewGallery(1, 12), 0)
	final, err := runner.Run(context.Background())

	req.NoError(err)
	req.True(final.Full())
	req.Len(final.Shapes, 12)
	// One generation request per tick, no batching
	req.Len(mock.Calls, 12)
}

func TestRunner_TimerIntervalStillReachesCap(t *testing.T) {
	req := require.New(t)
	mock := generator.NewMockShapeGenerator()

	runner := NewRunner(mock, scene.NewGallery(1, 3), time.Millisecond)
	final, err := runner.Run(context.Background())

	req.NoError(err)
	req.Len(final.Shapes, 3)
}

func TestRunner_ContextCancellationStopsEarly(t *testing.T) {
	req := require.New(t)
	mock := generator.NewMockShapeGenerator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(mock, scene.NewGallery(1, 1000), time.Second)
	final, err := runner.Run(ctx)

	req.ErrorIs(err, context.Canceled)
	req.False(final.Full())
}
