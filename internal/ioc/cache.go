package ioc

import (
	"fmt"
	"time"

	"gitee.com/flycash/publish-gateway/internal/repository/cache"
	"gitee.com/flycash/publish-gateway/internal/repository/cache/local"
	rediscache "gitee.com/flycash/publish-gateway/internal/repository/cache/redis"
	"github.com/gotomicro/ego/core/econf"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

func InitGoCache() *ca.Cache {
	const cleanupInterval = time.Minute
	return ca.New(cache.DefaultExpiredTime, cleanupInterval)
}

// InitAccountCache 多实例部署时使用 redis，单实例可以用本地缓存
func InitAccountCache(localCache *ca.Cache, rdb redis.Cmdable) cache.AccountCache {
	type Config struct {
		Type string
	}
	var cfg Config
	if err := econf.UnmarshalKey("cache", &cfg); err != nil {
		panic(err)
	}
	switch cfg.Type {
	case "", "local":
		return local.NewLocalCache(localCache)
	case "redis":
		return rediscache.NewCache(rdb)
	default:
		panic(fmt.Sprintf("未知的缓存类型 %q", cfg.Type))
	}
}
