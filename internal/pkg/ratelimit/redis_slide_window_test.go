//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, interval time.Duration, rate int) (*RedisSlidingWindowLimiter, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSlidingWindowLimiter(rdb, interval, rate), rdb
}

func TestRedisSlidingWindowLimiter_Limit(t *testing.T) {
	t.Parallel()
	limiter, rdb := newLimiter(t, time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		limited, err := limiter.Limit(ctx, "AC1")
		require.NoError(t, err)
		assert.False(t, limited, "第%d个请求不应该被限流", i+1)
	}
	limited, err := limiter.Limit(ctx, "AC1")
	require.NoError(t, err)
	assert.True(t, limited)

	// 被拒绝的请求不计数
	cnt, err := rdb.ZCard(ctx, limiter.countKey("AC1")).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)

	// 不同 key 互不影响
	limited, err = limiter.Limit(ctx, "AC2")
	require.NoError(t, err)
	assert.False(t, limited)
}

func TestRedisSlidingWindowLimiter_WindowSliding(t *testing.T) {
	t.Parallel()
	limiter, _ := newLimiter(t, 50*time.Millisecond, 1)
	ctx := context.Background()

	limited, err := limiter.Limit(ctx, "AC1")
	require.NoError(t, err)
	assert.False(t, limited)
	limited, err = limiter.Limit(ctx, "AC1")
	require.NoError(t, err)
	assert.True(t, limited)

	time.Sleep(80 * time.Millisecond)
	limited, err = limiter.Limit(ctx, "AC1")
	require.NoError(t, err)
	assert.False(t, limited)
}
