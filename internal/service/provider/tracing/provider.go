package tracing

import (
	"context"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Provider 为供应商实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	tracer   trace.Tracer
}

func NewProvider(p provider.Provider) *Provider {
	return &Provider{
		provider: p,
		tracer:   otel.Tracer("publish-gateway/provider"),
	}
}

func (p *Provider) Send(ctx context.Context, sms domain.OutboundSMS, creds domain.ExternalCarrierCredentials) (domain.CarrierReceipt, error) {
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("carrier.provider", creds.ProviderName()),
			attribute.String("sms.to", sms.To),
		))
	defer span.End()

	receipt, err := p.provider.Send(ctx, sms, creds)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.String("carrier.messageId", receipt.RemoteMessageID),
			attribute.String("carrier.status", string(receipt.Status)),
		)
	}
	return receipt, err
}
