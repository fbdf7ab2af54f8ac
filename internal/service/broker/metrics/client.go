package metrics

import (
	"context"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/service/broker"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	callCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broker_client_calls_total",
			Help: "Total number of broker client calls",
		},
		[]string{"operation", "result"},
	)
	callDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "broker_client_call_duration_seconds",
			Help:       "Broker client call latency in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(callCounter, callDuration)
}

// Client 为消息队列客户端统计调用次数和耗时
type Client struct {
	client broker.Client
}

func NewClient(client broker.Client) *Client {
	return &Client{client: client}
}

func (c *Client) QueueExists(ctx context.Context, queue, virtualHost string) (bool, error) {
	start := time.Now()
	exists, err := c.client.QueueExists(ctx, queue, virtualHost)
	result := "absent"
	switch {
	case err != nil:
		result = "error"
	case exists:
		result = "present"
	}
	c.observe("queue_exists", result, start)
	return exists, err
}

func (c *Client) Publish(ctx context.Context, msg domain.BrokerMessage) error {
	start := time.Now()
	err := c.client.Publish(ctx, msg)
	result := "success"
	if err != nil {
		result = "error"
	}
	c.observe("publish", result, start)
	return err
}

func (c *Client) observe(op, result string, start time.Time) {
	callCounter.WithLabelValues(op, result).Inc()
	callDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
