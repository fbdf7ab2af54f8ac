package broker

import (
	"context"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	amqp "github.com/rabbitmq/amqp091-go"
)

var _ Client = (*RabbitMQClient)(nil)

// RabbitMQClient 管理接口判断队列是否存在，AMQP 投递消息
type RabbitMQClient struct {
	management *ManagementAPI
	publisher  publisher
	logger     *elog.Component
}

func NewRabbitMQClient(cfg Config) *RabbitMQClient {
	cfg = cfg.WithDefaults()
	dial := newDialer(cfg)
	var p publisher = &perPublishPublisher{dial: dial}
	if cfg.ConnectionPolicy == ConnectionPooled {
		p = &pooledPublisher{dial: dial, conns: make(map[string]*amqp.Connection)}
	}
	return &RabbitMQClient{
		management: NewManagementAPI(cfg),
		publisher:  p,
		logger:     elog.DefaultLogger,
	}
}

func (c *RabbitMQClient) QueueExists(ctx context.Context, queue, virtualHost string) (bool, error) {
	return c.management.QueueExists(ctx, queue, virtualHost)
}

func (c *RabbitMQClient) Publish(ctx context.Context, msg domain.BrokerMessage) error {
	err := c.publisher.publish(ctx, msg)
	if err != nil {
		c.logger.Error("投递消息失败",
			elog.String("vhost", msg.VirtualHost),
			elog.String("exchange", msg.Exchange),
			elog.String("routingKey", msg.RoutingKey),
			elog.FieldErr(err))
	}
	return err
}

// Management 供开通工具使用
func (c *RabbitMQClient) Management() *ManagementAPI {
	return c.management
}

func (c *RabbitMQClient) Close() error {
	return c.publisher.close()
}
