// Package cache provides a TTL-bound, single-value read cache with stampede protection.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Config holds TTLs for the in-process caches.
type Config struct {
	// CategoryTreeTTLSeconds is how long a built category tree is served. Zero disables caching.
	CategoryTreeTTLSeconds int `mapstructure:"category_tree_ttl_seconds" default:"300"`
}

// Loader builds a fresh value.
type Loader[T any] func(ctx context.Context) (T, error)

// Value caches the result of a Loader for a TTL.
type Value[T any] struct {
	mu    sync.RWMutex
	value T
	built time.Time
	valid bool
	ttl   time.Duration
	load  Loader[T]
	sf    singleflight.Group

	// gen advances on every Invalidate; a build only stores its result when
	// no invalidation happened while it ran.
	gen uint64
}

// NewValue creates a cached value. A zero ttl disables caching.
func NewValue[T any](ttl time.Duration, load Loader[T]) *Value[T] {
	return &Value[T]{ttl: ttl, load: load}
}

// isExpired must be called with mu held.
func (v *Value[T]) isExpired() bool {
	if !v.valid || v.ttl == 0 {
		return true
	}
	return time.Since(v.built) > v.ttl
}

// Get returns the cached value, or builds it when missing or expired.
// Concurrent callers share a single build, which is not cancelled when the
// caller that started it goes away.
func (v *Value[T]) Get(ctx context.Context) (T, error) {
	v.mu.RLock()
	if !v.isExpired() {
		val := v.value
		v.mu.RUnlock()
		return val, nil
	}
	v.mu.RUnlock()

	result, err, _ := v.sf.Do("value", func() (any, error) {
		v.mu.RLock()
		if !v.isExpired() {
			val := v.value
			v.mu.RUnlock()
			return val, nil
		}
		gen := v.gen
		v.mu.RUnlock()

		val, err := v.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		v.mu.Lock()
		if v.gen == gen {
			v.value = val
			v.built = time.Now()
			v.valid = true
		}
		v.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

// Invalidate drops the cached value so the next Get rebuilds it. A build
// already in flight still answers its callers but is not cached.
func (v *Value[T]) Invalidate() {
	v.mu.Lock()
	v.valid = false
	v.gen++
	v.mu.Unlock()
	v.sf.Forget("value")
}
