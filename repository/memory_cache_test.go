package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(0)
	defer cache.Close()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	require.NoError(t, cache.Set(ctx, "k", "w"))
	val, _ = cache.Get(ctx, "k")
	assert.Equal(t, "w", val)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_ExpiredEntryMisses(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Hour)
	defer cache.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v"))

	now = now.Add(59 * time.Minute)
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	now = now.Add(time.Minute)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Zero(t, cache.Len())
}

func TestMemoryCache_SetRefreshesExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Hour)
	defer cache.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v"))
	now = now.Add(45 * time.Minute)
	require.NoError(t, cache.Set(ctx, "k", "w"))
	now = now.Add(45 * time.Minute)

	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "w", val)
}

func TestMemoryCache_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Hour)
	defer cache.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "old", "v"))
	now = now.Add(30 * time.Minute)
	require.NoError(t, cache.Set(ctx, "fresh", "v"))

	now = now.Add(45 * time.Minute)
	cache.purgeExpired()

	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get(ctx, "fresh")
	assert.True(t, ok)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(0)
	defer cache.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v"))
	now = now.Add(24 * 365 * time.Hour)
	cache.purgeExpired()

	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Hour)
	defer cache.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%10)
			_ = cache.Set(ctx, key, "v")
			cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, cache.Len())
}
