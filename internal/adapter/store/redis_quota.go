package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const quotaTTL = 48 * time.Hour

// incrementWithin counts a query only while the key is below the limit.
// KEYS[1] = day key, ARGV[1] = limit (negative = none), ARGV[2] = ttl seconds.
var incrementWithin = redis.NewScript(`
local used = tonumber(redis.call('GET', KEYS[1]) or '0')
local limit = tonumber(ARGV[1])
if limit >= 0 and used >= limit then
	return {used, 0}
end
used = redis.call('INCR', KEYS[1])
redis.call('EXPIRE', KEYS[1], ARGV[2])
return {used, 1}
`)

// RedisQuota counts queries per user per calendar day (UTC).
type RedisQuota struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisQuota(client *redis.Client) *RedisQuota {
	return &RedisQuota{
		client: client,
		now:    time.Now,
	}
}

func (r *RedisQuota) key(userID string) string {
	return "quota:" + userID + ":" + r.now().UTC().Format("2006-01-02")
}

func (r *RedisQuota) Used(ctx context.Context, userID string) (int, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil // No usage yet
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}

func (r *RedisQuota) IncrementWithin(ctx context.Context, userID string, limit int) (int, bool, error) {
	// Keys outlive their day a little so late reads still see the count
	res, err := incrementWithin.Run(ctx, r.client, []string{r.key(userID)}, limit, int(quotaTTL.Seconds())).Int64Slice()
	if err != nil {
		return 0, false, err
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("unexpected quota script reply %v", res)
	}
	return int(res[0]), res[1] == 1, nil
}
