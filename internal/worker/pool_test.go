package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HeroArena_Go/internal/testing/leaktest"
)

func TestPool_RunsJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	var count atomic.Int32
	for i := 0; i < 5; i++ {
		assert.True(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
			count.Add(1)
			return nil
		})))
	}

	assert.Eventually(t, func() bool { return count.Load() == 5 }, time.Second, 5*time.Millisecond)
}

func TestPool_JobErrorsAndPanicsDoNotKillWorker(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	var ran atomic.Bool
	pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(ctx context.Context) error { panic("bad job") }))
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}))

	assert.Eventually(t, ran.Load, time.Second, 5*time.Millisecond)
}

func TestPool_EnqueueWhenFull(t *testing.T) {
	pool := NewPool(1, 1)
	// not started, so the single slot stays occupied
	assert.True(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil })))
	assert.False(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil })))
	pool.Stop()
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	assert.False(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil })))
}

func TestPool_StopCancelsContextAndLeaksNothing(t *testing.T) {
	baseline := leaktest.Snapshot(t)

	pool := NewPool(3, 3)
	pool.Start()

	started := make(chan struct{})
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))
	<-started
	pool.Stop()

	baseline.Settled(1)
}
