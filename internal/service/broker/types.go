package broker

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
)

//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=brokermocks Client
type Client interface {
	// QueueExists 队列存在说明租户的自建客户端正在监听，404 不是错误
	QueueExists(ctx context.Context, queue, virtualHost string) (bool, error)
	// Publish 投递一条持久化消息，失败直接返回，不重试
	Publish(ctx context.Context, msg domain.BrokerMessage) error
}

// ConnectionPolicy 数据面连接策略
type ConnectionPolicy string

const (
	// ConnectionPerPublish 每次投递都新建并关闭连接
	ConnectionPerPublish ConnectionPolicy = "per-publish"
	// ConnectionPooled 每个虚拟主机复用一条连接，每次投递开一个 channel
	ConnectionPooled ConnectionPolicy = "pooled"
)

const (
	defaultAMQPPort          = 5672
	defaultAMQPSPort         = 5671
	defaultManagementPort    = 15672
	defaultManagementTLSPort = 15671
	defaultTimeout           = 5 * time.Second
)

type Config struct {
	Host     string `json:"host"`
	Username string `json:"username"`
	Password string `json:"password"`
	SSL      bool   `json:"ssl"`
	// 为 0 时按 SSL 选择默认端口
	AMQPPort       int `json:"amqpPort"`
	ManagementPort int `json:"managementPort"`
	// 不为空时直接使用，忽略 Host 和 ManagementPort
	ManagementURL    string           `json:"managementURL"`
	Timeout          time.Duration    `json:"timeout"`
	ConnectionPolicy ConnectionPolicy `json:"connectionPolicy"`
}

func (c Config) WithDefaults() Config {
	if c.AMQPPort == 0 {
		c.AMQPPort = defaultAMQPPort
		if c.SSL {
			c.AMQPPort = defaultAMQPSPort
		}
	}
	if c.ManagementPort == 0 {
		c.ManagementPort = defaultManagementPort
		if c.SSL {
			c.ManagementPort = defaultManagementTLSPort
		}
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.ConnectionPolicy == "" {
		c.ConnectionPolicy = ConnectionPerPublish
	}
	return c
}

func (c Config) Validate() error {
	if c.Host == "" && c.ManagementURL == "" {
		return fmt.Errorf("%w: broker host 不能为空", errs.ErrInvalidParameter)
	}
	if c.ConnectionPolicy != ConnectionPerPublish && c.ConnectionPolicy != ConnectionPooled {
		return fmt.Errorf("%w: connectionPolicy = %q", errs.ErrInvalidParameter, c.ConnectionPolicy)
	}
	return nil
}

func (c Config) managementBaseURL() string {
	if c.ManagementURL != "" {
		return c.ManagementURL
	}
	scheme := "http"
	if c.SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.ManagementPort)
}
