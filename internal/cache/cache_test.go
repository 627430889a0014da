package cache_test

import (
	"testing"
	"time"

	"github.com/scoopnews/newsdesk/internal/cache"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	store := cache.New[string]()
	store.Set("edition", "front page", time.Minute)

	got, ok := store.Get("edition")
	require.True(t, ok)
	require.Equal(t, "front page", got)
}

func TestGetMissingKey(t *testing.T) {
	store := cache.New[int]()

	got, ok := store.Get("absent")
	require.False(t, ok)
	require.Zero(t, got)
}

func TestExpiredEntryIsEvictedOnRead(t *testing.T) {
	store := cache.New[string]()
	store.Set("stale", "yesterday's news", 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, ok := store.Get("stale")
	require.False(t, ok)
	require.Equal(t, 0, store.Len())
}

func TestSetOverwritesExistingEntry(t *testing.T) {
	store := cache.New[string]()
	store.Set("key", "first", time.Minute)
	store.Set("key", "second", time.Minute)

	got, ok := store.Get("key")
	require.True(t, ok)
	require.Equal(t, "second", got)
	require.Equal(t, 1, store.Len())
}

func TestDelete(t *testing.T) {
	store := cache.New[string]()
	store.Set("key", "value", time.Minute)
	store.Delete("key")

	_, ok := store.Get("key")
	require.False(t, ok)
}

func TestDistinctKeysAreIndependent(t *testing.T) {
	store := cache.New[[]string]()
	store.Set("All--en-global", []string{"a"}, time.Minute)
	store.Set("All--es-global", []string{"b"}, time.Minute)

	en, ok := store.Get("All--en-global")
	require.True(t, ok)
	require.Equal(t, []string{"a"}, en)

	es, ok := store.Get("All--es-global")
	require.True(t, ok)
	require.Equal(t, []string{"b"}, es)
}
