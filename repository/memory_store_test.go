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

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	require.NoError(t, store.Set(ctx, "k", "v2"))

	val, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", val)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))
	assert.Zero(t, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = store.Set(ctx, key, "v")
			_, _, _ = store.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, store.Len())
}

func TestMemoryCache_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	store := NewMemoryCache(time.Minute, 0)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "k", "v"))

	now = now.Add(59 * time.Second)
	val, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", val)

	now = now.Add(time.Second)
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, store.Len())

	// a rewrite starts a fresh TTL
	require.NoError(t, store.Set(ctx, "k", "v2"))
	now = now.Add(30 * time.Second)
	val, found, _ = store.Get(ctx, "k")
	assert.True(t, found)
	assert.Equal(t, "v2", val)
}

func TestMemoryCache_EvictsOldestWhenFull(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCache(0, 3)

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, store.Set(ctx, key, key))
	}
	// overwriting an existing key never evicts
	require.NoError(t, store.Set(ctx, "a", "a2"))
	assert.Equal(t, 3, store.Len())

	require.NoError(t, store.Set(ctx, "d", "d"))
	assert.Equal(t, 3, store.Len())

	_, found, _ := store.Get(ctx, "b")
	assert.False(t, found, "b was the oldest write")
	for _, key := range []string{"a", "c", "d"} {
		_, found, _ := store.Get(ctx, key)
		assert.True(t, found, key)
	}
}

func TestMemoryCache_ExpiredKeysAreEvictedFirst(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	store := NewMemoryCache(time.Minute, 2)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "old", "1"))
	now = now.Add(45 * time.Second)
	require.NoError(t, store.Set(ctx, "young", "2"))

	now = now.Add(30 * time.Second)
	require.NoError(t, store.Set(ctx, "new", "3"))

	_, found, _ := store.Get(ctx, "young")
	assert.True(t, found)
	_, found, _ = store.Get(ctx, "new")
	assert.True(t, found)
	assert.Equal(t, 2, store.Len())
}

func TestMemoryCache_StaysBoundedUnderDistinctKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCache(time.Hour, 100)

	for i := 0; i < 2000; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("schedule:%d", i), "{}"))
	}

	assert.Equal(t, 100, store.Len())
	store.mu.RLock()
	assert.Len(t, store.data, 100)
	store.mu.RUnlock()

	_, found, _ := store.Get(ctx, "schedule:1999")
	assert.True(t, found)
	_, found, _ = store.Get(ctx, "schedule:0")
	assert.False(t, found)
}
