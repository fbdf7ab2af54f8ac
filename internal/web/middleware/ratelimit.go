package middleware

import (
	"net/http"

	"gitee.com/flycash/publish-gateway/internal/pkg/ratelimit"
	"gitee.com/flycash/publish-gateway/internal/web"
	"github.com/gin-gonic/gin"
	aegisratelimit "github.com/go-kratos/aegis/ratelimit"
	"github.com/go-kratos/aegis/ratelimit/bbr"
	"github.com/gotomicro/ego/core/elog"
)

// RateLimit 按 key 限流，key 为空时放行。限流器出错时放行
func RateLimit(limiter ratelimit.Limiter, keyFn func(ctx *gin.Context) string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := keyFn(ctx)
		if key == "" {
			ctx.Next()
			return
		}
		limited, err := limiter.Limit(ctx.Request.Context(), key)
		if err != nil {
			elog.DefaultLogger.Warn("限流器异常", elog.String("key", key), elog.FieldErr(err))
			ctx.Next()
			return
		}
		if limited {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, web.Result{
				Code: http.StatusTooManyRequests,
				Msg:  "too many requests",
			})
			return
		}
		ctx.Next()
	}
}

// Overload 根据 CPU 和并发自适应拒绝请求
func Overload(limiter *bbr.BBR) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		done, err := limiter.Allow()
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, web.Result{
				Code: http.StatusServiceUnavailable,
				Msg:  "server overloaded",
			})
			return
		}
		ctx.Next()
		var handlerErr error
		if last := ctx.Errors.Last(); last != nil {
			handlerErr = last
		}
		done(aegisratelimit.DoneInfo{Err: handlerErr})
	}
}

// BasicAuthUser 以 API key 中的 account sid 作为限流 key
func BasicAuthUser(ctx *gin.Context) string {
	user, _, ok := ctx.Request.BasicAuth()
	if !ok {
		return ""
	}
	return user
}
