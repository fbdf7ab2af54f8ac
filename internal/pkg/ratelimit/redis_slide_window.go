package ratelimit

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/slide_window.lua
	slidingWindowScript string

	_ Limiter = (*RedisSlidingWindowLimiter)(nil)
)

// RedisSlidingWindowLimiter 多个网关实例共享同一个窗口
type RedisSlidingWindowLimiter struct {
	cmd       redis.Cmdable
	interval  time.Duration
	rate      int
	keyPrefix string
}

func NewRedisSlidingWindowLimiter(cmd redis.Cmdable, interval time.Duration, rate int) *RedisSlidingWindowLimiter {
	return &RedisSlidingWindowLimiter{
		cmd:       cmd,
		interval:  interval,
		rate:      rate,
		keyPrefix: "ratelimit:",
	}
}

func (r *RedisSlidingWindowLimiter) Limit(ctx context.Context, key string) (bool, error) {
	member, err := uuid.NewV4()
	if err != nil {
		return false, err
	}
	return r.cmd.Eval(ctx, slidingWindowScript,
		[]string{r.countKey(key)},
		r.interval.Milliseconds(),
		r.rate,
		time.Now().UnixMilli(),
		member.String(),
	).Bool()
}

func (r *RedisSlidingWindowLimiter) countKey(key string) string {
	return fmt.Sprintf("%scount:%s", r.keyPrefix, key)
}
