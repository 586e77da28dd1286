package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_SubmitReturnsTaskError(t *testing.T) {
	p := New(&Config{MaxWorkers: 2, QueueSize: 4}, nil)
	defer p.Shutdown(context.Background())

	want := errors.New("remove failed")
	err := p.Submit(context.Background(), func(ctx context.Context) error { return want })
	assert.ErrorIs(t, err, want)

	assert.NoError(t, p.Submit(context.Background(), func(ctx context.Context) error { return nil }))
	assert.Equal(t, int64(1), p.GetMetrics().FailedCount)
}

func TestPool_SubmitRecoversPanic(t *testing.T) {
	p := New(&Config{MaxWorkers: 1, QueueSize: 1}, nil)
	defer p.Shutdown(context.Background())

	err := p.Submit(context.Background(), func(ctx context.Context) error { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	// worker 仍然可用
	assert.NoError(t, p.Submit(context.Background(), func(ctx context.Context) error { return nil }))
}

func TestPool_QueueFull(t *testing.T) {
	p := New(&Config{MaxWorkers: 1, QueueSize: 1}, nil)
	release := make(chan struct{})
	started := make(chan struct{})

	require.NoError(t, p.SubmitAsync(context.Background(), func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}))
	<-started
	require.NoError(t, p.SubmitAsync(context.Background(), func(ctx context.Context) error { return nil }))

	assert.ErrorIs(t, p.SubmitAsync(context.Background(), func(ctx context.Context) error { return nil }), ErrWorkerPoolFull)

	close(release)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_ShutdownDrainsQueue(t *testing.T) {
	p := New(&Config{MaxWorkers: 2, QueueSize: 16}, nil)
	var ran int32

	for i := 0; i < 10; i++ {
		require.NoError(t, p.SubmitAsync(context.Background(), func(ctx context.Context) error {
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&ran, 1)
			return nil
		}))
	}

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(10), atomic.LoadInt32(&ran))
	assert.True(t, p.IsClosed())
	assert.ErrorIs(t, p.SubmitAsync(context.Background(), func(ctx context.Context) error { return nil }), ErrWorkerPoolClosed)
}

func TestPool_CancelledBeforeStart(t *testing.T) {
	p := New(&Config{MaxWorkers: 1, QueueSize: 1}, nil)
	defer p.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Submit(ctx, func(ctx context.Context) error { return nil })
	assert.True(t, errors.Is(err, ErrTaskCancelled) || errors.Is(err, context.Canceled))
}
