//go:build e2e

package broker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// 依赖本地 RabbitMQ，默认 guest/guest
type RabbitMQClientTestSuite struct {
	suite.Suite
	cfg Config
}

func TestRabbitMQClient(t *testing.T) {
	suite.Run(t, &RabbitMQClientTestSuite{cfg: Config{
		Host:     "localhost",
		Username: "guest",
		Password: "guest",
	}})
}

func (s *RabbitMQClientTestSuite) TestPublish() {
	for _, policy := range []ConnectionPolicy{ConnectionPerPublish, ConnectionPooled} {
		s.Run(string(policy), func() {
			t := s.T()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			cfg := s.cfg
			cfg.ConnectionPolicy = policy
			client := NewRabbitMQClient(cfg)
			defer client.Close()

			const vhost, exchange = "/", "PJ0e2etest1"
			queue := exchange + "_Cameroon_MTN"
			admin := client.Management()
			require.NoError(t, admin.DeclareTopicExchange(ctx, vhost, exchange))
			require.NoError(t, admin.DeclareBoundQueue(ctx, vhost, exchange, queue, domain.RoutingKey(queue)))
			defer func() { _ = admin.DeleteQueue(ctx, vhost, queue) }()

			exists, err := client.QueueExists(ctx, queue, vhost)
			require.NoError(t, err)
			assert.True(t, exists)

			err = client.Publish(ctx, domain.BrokerMessage{
				VirtualHost: vhost,
				Exchange:    exchange,
				RoutingKey:  domain.RoutingKey(queue),
				Text:        "hello",
				Number:      "+237677000000",
			})
			require.NoError(t, err)

			conn, err := newDialer(cfg)(vhost)
			require.NoError(t, err)
			defer conn.Close()
			ch, err := conn.Channel()
			require.NoError(t, err)
			var msg amqp.Delivery
			var ok bool
			for i := 0; i < 20 && !ok; i++ {
				msg, ok, err = ch.Get(queue, true)
				require.NoError(t, err)
				time.Sleep(100 * time.Millisecond)
			}
			require.True(t, ok)
			assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
			var body map[string]string
			require.NoError(t, json.Unmarshal(msg.Body, &body))
			assert.Equal(t, "hello", body["text"])
		})
	}
}
