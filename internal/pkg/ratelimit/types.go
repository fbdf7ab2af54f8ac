package ratelimit

import "context"

// Limiter 限流器，返回 true 表示应该拒绝
type Limiter interface {
	Limit(ctx context.Context, key string) (bool, error)
}
