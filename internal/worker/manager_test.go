package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// loopWorker крутится, пока его не остановят
type loopWorker struct {
	*BaseWorker
	ticks atomic.Int32
}

func newLoopWorker(name string) *loopWorker {
	return &loopWorker{BaseWorker: NewBaseWorker(name, "group", zap.NewNop())}
}

func (w *loopWorker) Start(ctx context.Context) error {
	for w.Sleep(ctx, time.Millisecond) {
		w.ticks.Add(1)
	}
	return nil
}

// stuckWorker игнорирует Stop
type stuckWorker struct {
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error { <-w.release; return nil }
func (w *stuckWorker) Stop() error                 { return nil }
func (w *stuckWorker) Name() string                { return "stuck" }

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), time.Second)
	a, b := newLoopWorker("a"), newLoopWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, func() bool {
		return a.ticks.Load() > 0 && b.ticks.Load() > 0
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
	assert.NoError(t, a.Stop(), "second stop is a no-op")
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), 0)
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), 20*time.Millisecond)
	w := &stuckWorker{release: make(chan struct{})}
	defer close(w.release)
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Stop())
}

func TestBaseWorker_SleepWakesOnCancel(t *testing.T) {
	w := NewBaseWorker("sleepy", "group", zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.False(t, w.Sleep(ctx, time.Minute))
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, w.Sleep(context.Background(), time.Millisecond))
}
