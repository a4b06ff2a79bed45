package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*ListCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewListCache(client, time.Minute, nil), mr
}

func TestListCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "owner-1")
	require.False(t, ok)

	tasks := []Task{{ID: "task-1", Title: "t", Status: StatusPending, OwnerID: "owner-1"}}
	cache.Set(ctx, "owner-1", tasks)

	cached, ok := cache.Get(ctx, "owner-1")
	require.True(t, ok)
	require.Equal(t, tasks, cached)

	// Another owner's key stays cold.
	_, ok = cache.Get(ctx, "owner-2")
	require.False(t, ok)
}

func TestListCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "owner-1", []Task{{ID: "task-1", OwnerID: "owner-1"}})
	cache.Invalidate(ctx, "owner-1")

	_, ok := cache.Get(ctx, "owner-1")
	require.False(t, ok)
}

func TestListCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewListCache(client, time.Second, nil)
	ctx := context.Background()

	cache.Set(ctx, "owner-1", []Task{{ID: "task-1", OwnerID: "owner-1"}})
	mr.FastForward(2 * time.Second)

	_, ok := cache.Get(ctx, "owner-1")
	require.False(t, ok)
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *ListCache
	ctx := context.Background()

	_, ok := cache.Get(ctx, "owner-1")
	require.False(t, ok)
	cache.Set(ctx, "owner-1", nil)
	cache.Invalidate(ctx, "owner-1")
}

func TestServiceUsesCache(t *testing.T) {
	cache, _ := newTestCache(t)
	repo := newMemoryRepo()
	svc := NewService(repo, cache)
	ctx := context.Background()

	task, err := svc.Create(ctx, "owner-1", CreateInput{Title: "t"})
	require.NoError(t, err)

	// First list warms the cache.
	list, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	cached, ok := cache.Get(ctx, "owner-1")
	require.True(t, ok)
	require.Len(t, cached, 1)

	// A mutation drops the cached list.
	_, err = svc.Update(ctx, task.ID, "owner-1", Patch{Status: strptr("done")})
	require.NoError(t, err)

	_, ok = cache.Get(ctx, "owner-1")
	require.False(t, ok)

	list, err = svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Equal(t, "done", list[0].Status)
}
