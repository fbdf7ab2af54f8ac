package ioc

import (
	"context"
	"errors"

	"gitee.com/flycash/publish-gateway/internal/pkg/workerpool"
	"gitee.com/flycash/publish-gateway/internal/service/broker"
	"github.com/gotomicro/ego/server/egin"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	HTTPServer *egin.Component
	Pool       *workerpool.Pool
	Broker     *broker.RabbitMQClient
	Tracer     *trace.TracerProvider
}

// Close 先等后台批次，再关闭消息队列连接和 tracer
func (a *App) Close(ctx context.Context) error {
	return errors.Join(
		a.Pool.Shutdown(ctx),
		a.Broker.Close(),
		a.Tracer.Shutdown(ctx),
	)
}
