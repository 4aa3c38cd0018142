package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bookstore/core/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_CachesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	v := cache.NewValue(time.Minute, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	first, err := v.Get(context.Background())
	require.NoError(t, err)
	second, err := v.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestValue_Invalidate(t *testing.T) {
	var calls atomic.Int32
	v := cache.NewValue(time.Minute, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	_, _ = v.Get(context.Background())
	v.Invalidate()
	got, err := v.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestValue_ZeroTTLDisablesCaching(t *testing.T) {
	var calls atomic.Int32
	v := cache.NewValue(0, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	_, _ = v.Get(context.Background())
	_, _ = v.Get(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}

func TestValue_ErrorNotCached(t *testing.T) {
	fail := true
	v := cache.NewValue(time.Minute, func(ctx context.Context) (string, error) {
		if fail {
			return "", errors.New("db down")
		}
		return "tree", nil
	})

	_, err := v.Get(context.Background())
	assert.ErrorContains(t, err, "db down")

	fail = false
	got, err := v.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tree", got)
}

func TestValue_ConcurrentGetSharesBuild(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	v := cache.NewValue(time.Minute, func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := v.Get(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, 42, got)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestValue_InvalidateDuringBuildDiscardsResult(t *testing.T) {
	var mu sync.Mutex
	source := "old"
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	v := cache.NewValue(time.Minute, func(ctx context.Context) (string, error) {
		mu.Lock()
		val := source
		mu.Unlock()
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return val, nil
	})

	done := make(chan string, 1)
	go func() {
		got, _ := v.Get(context.Background())
		done <- got
	}()

	<-started
	mu.Lock()
	source = "new"
	mu.Unlock()
	v.Invalidate()
	close(release)
	assert.Equal(t, "old", <-done)

	got, err := v.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestValue_BuildSurvivesCallerCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	v := cache.NewValue(time.Minute, func(ctx context.Context) (int, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 7, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := v.Get(ctx)
		errc <- err
	}()

	<-started
	cancel()
	close(release)
	require.NoError(t, <-errc)

	got, err := v.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
