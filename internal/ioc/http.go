package ioc

import (
	"time"

	"gitee.com/flycash/publish-gateway/internal/pkg/ratelimit"
	"gitee.com/flycash/publish-gateway/internal/web/middleware"
	publishweb "gitee.com/flycash/publish-gateway/internal/web/publish"
	"github.com/go-kratos/aegis/ratelimit/bbr"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
)

func InitLimiter(rdb redis.Cmdable) ratelimit.Limiter {
	type Config struct {
		Interval time.Duration
		Rate     int
	}
	cfg := Config{Interval: time.Second, Rate: 100}
	if err := econf.UnmarshalKey("ratelimit", &cfg); err != nil {
		panic(err)
	}
	return ratelimit.NewRedisSlidingWindowLimiter(rdb, cfg.Interval, cfg.Rate)
}

func InitHTTPServer(handler *publishweb.Handler, limiter ratelimit.Limiter) *egin.Component {
	server := egin.Load("server.http").Build()
	server.Use(
		middleware.Overload(bbr.NewLimiter()),
		middleware.RateLimit(limiter, middleware.BasicAuthUser),
	)
	handler.PublicRoutes(server.Engine)
	return server
}
