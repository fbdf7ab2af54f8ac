package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	commandCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_redis_commands_total",
			Help: "Redis 命令执行次数",
		},
		[]string{"command", "status"},
	)
	commandDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "gateway_redis_command_duration_seconds",
			Help:       "Redis 命令耗时（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"command"},
	)
	dialCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_redis_dials_total",
			Help: "Redis 建立连接次数",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(commandCounter, commandDuration, dialCounter)
}

// Hook 统计账号缓存和限流使用的 Redis 命令
type Hook struct{}

func NewMetricsHook() *Hook {
	return &Hook{}
}

func statusOf(err error) string {
	// 缓存未命中不算错误
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusSuccess
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		commandCounter.WithLabelValues(cmd.Name(), statusOf(err)).Inc()
		return err
	}
}

// ProcessPipelineHook 管道按单条命令分别计数
func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		for _, cmd := range cmds {
			commandCounter.WithLabelValues(cmd.Name(), statusOf(cmd.Err())).Inc()
		}
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		dialCounter.WithLabelValues(statusOf(err)).Inc()
		return conn, err
	}
}

func WithMetrics(client *redis.Client) *redis.Client {
	client.AddHook(NewMetricsHook())
	return client
}
