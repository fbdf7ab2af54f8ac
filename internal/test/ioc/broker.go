package ioc

import (
	"gitee.com/flycash/publish-gateway/internal/service/broker"
)

// InitBrokerConfig 对应 docker compose 中的 rabbitmq
func InitBrokerConfig() broker.Config {
	return broker.Config{
		Host:             "localhost",
		Username:         "guest",
		Password:         "guest",
		ConnectionPolicy: broker.ConnectionPerPublish,
	}.WithDefaults()
}
