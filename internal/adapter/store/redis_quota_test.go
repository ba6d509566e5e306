package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuota(t *testing.T) (*RedisQuota, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisQuota(rdb), mr
}

func TestRedisQuota_DailyKeyAndTTL(t *testing.T) {
	q, mr := newTestQuota(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 23, 59, 30, 0, time.FixedZone("WAT", 3600))
	q.now = func() time.Time { return now }

	used, err := q.Used(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, used)

	used, ok, err := q.IncrementWithin(ctx, "u1", 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, used)

	// 23:59 WAT is still 22:59 UTC on the 9th
	assert.True(t, mr.Exists("quota:u1:2026-03-09"))
	assert.Equal(t, quotaTTL, mr.TTL("quota:u1:2026-03-09"))

	// Past midnight UTC the count starts over
	now = time.Date(2026, 3, 10, 0, 0, 1, 0, time.UTC)
	used, err = q.Used(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, used)

	used, ok, err = q.IncrementWithin(ctx, "u1", 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, used)
	assert.True(t, mr.Exists("quota:u1:2026-03-10"))
}

func TestRedisQuota_IncrementWithinStopsAtLimit(t *testing.T) {
	q, mr := newTestQuota(t)
	ctx := context.Background()
	q.now = func() time.Time { return time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, mr.Set("quota:u1:2026-03-09", "4"))

	used, ok, err := q.IncrementWithin(ctx, "u1", 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, used)

	used, ok, err = q.IncrementWithin(ctx, "u1", 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 5, used)

	got, err := mr.Get("quota:u1:2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, "5", got)

	// Negative limit never blocks
	used, ok, err = q.IncrementWithin(ctx, "u1", -1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 6, used)
}

func TestRedisQuota_Unreachable(t *testing.T) {
	q, mr := newTestQuota(t)
	mr.Close()

	_, err := q.Used(context.Background(), "u1")
	assert.Error(t, err)
	_, _, err = q.IncrementWithin(context.Background(), "u1", 5)
	assert.Error(t, err)
}
