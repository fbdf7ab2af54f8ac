package ioc

import (
	"gitee.com/flycash/publish-gateway/internal/service/broker"
	brokermetrics "gitee.com/flycash/publish-gateway/internal/service/broker/metrics"
	"github.com/gotomicro/ego/core/econf"
)

func InitBrokerConfig() broker.Config {
	var cfg broker.Config
	if err := econf.UnmarshalKey("broker", &cfg); err != nil {
		panic(err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func InitRabbitMQ(cfg broker.Config) *broker.RabbitMQClient {
	return broker.NewRabbitMQClient(cfg)
}

func InitBrokerClient(c *broker.RabbitMQClient) broker.Client {
	return brokermetrics.NewClient(c)
}
