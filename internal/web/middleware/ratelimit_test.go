//go:build unit

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-kratos/aegis/ratelimit/bbr"
	"github.com/stretchr/testify/assert"
)

type fakeLimiter struct {
	limited bool
	err     error
	keys    []string
}

func (f *fakeLimiter) Limit(_ context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.limited, f.err
}

func newEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middlewares...)
	engine.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})
	return engine
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		limiter  *fakeLimiter
		key      string
		wantCode int
		wantKeys int
	}{
		{name: "放行", limiter: &fakeLimiter{}, key: "AC1", wantCode: http.StatusOK, wantKeys: 1},
		{name: "限流", limiter: &fakeLimiter{limited: true}, key: "AC1", wantCode: http.StatusTooManyRequests, wantKeys: 1},
		{name: "限流器异常放行", limiter: &fakeLimiter{err: errors.New("redis down")}, key: "AC1", wantCode: http.StatusOK, wantKeys: 1},
		{name: "没有 key 不限流", limiter: &fakeLimiter{limited: true}, key: "", wantCode: http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newEngine(RateLimit(tc.limiter, func(*gin.Context) string { return tc.key }))
			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Len(t, tc.limiter.keys, tc.wantKeys)
		})
	}
}

func TestOverload(t *testing.T) {
	engine := newEngine(Overload(bbr.NewLimiter()))
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
