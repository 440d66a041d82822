package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindowStore_AllowsUpToLimit(t *testing.T) {
	store := NewSlidingWindowStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, _, err := store.Hit(ctx, "k", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i)
	}

	allowed, retryAfter, err := store.Hit(ctx, "k", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)
}

func TestSlidingWindowStore_KeysAreIndependent(t *testing.T) {
	store := NewSlidingWindowStore()
	ctx := context.Background()

	allowed, _, err := store.Hit(ctx, "a", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _, _ = store.Hit(ctx, "a", 1, time.Minute)
	assert.False(t, allowed)

	allowed, _, _ = store.Hit(ctx, "b", 1, time.Minute)
	assert.True(t, allowed)
}

func TestSlidingWindowStore_WindowSlides(t *testing.T) {
	store := NewSlidingWindowStore()
	ctx := context.Background()

	allowed, _, err := store.Hit(ctx, "k", 1, 20*time.Millisecond)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _, _ = store.Hit(ctx, "k", 1, 20*time.Millisecond)
	require.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, _, _ = store.Hit(ctx, "k", 1, 20*time.Millisecond)
	assert.True(t, allowed)
}

func TestSlidingWindowStore_Reset(t *testing.T) {
	store := NewSlidingWindowStore()
	ctx := context.Background()

	_, _, err := store.Hit(ctx, "k", 1, time.Minute)
	require.NoError(t, err)

	allowed, _, _ := store.Hit(ctx, "k", 1, time.Minute)
	require.False(t, allowed)

	require.NoError(t, store.Reset(ctx, "k"))

	allowed, _, _ = store.Hit(ctx, "k", 1, time.Minute)
	assert.True(t, allowed)
}

func TestSlidingWindowStore_ConcurrentHits(t *testing.T) {
	store := NewSlidingWindowStore()
	ctx := context.Background()

	const workers = 20
	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		go func() {
			allowed, _, _ := store.Hit(ctx, "shared", 10, time.Minute)
			results <- allowed
		}()
	}

	allowedCount := 0
	for i := 0; i < workers; i++ {
		if <-results {
			allowedCount++
		}
	}
	assert.Equal(t, 10, allowedCount, fmt.Sprintf("exactly the limit should pass, got %d", allowedCount))
}
