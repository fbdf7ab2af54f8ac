package tracing

import (
	"context"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/service/publish"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ publish.Service = (*Service)(nil)

// Service 为发布服务添加链路追踪
type Service struct {
	svc    publish.Service
	tracer trace.Tracer
}

func NewService(svc publish.Service) *Service {
	return &Service{
		svc:    svc,
		tracer: otel.Tracer("publish-gateway/publish"),
	}
}

func (s *Service) Publish(ctx context.Context, cmd domain.PublishCommand) (domain.DeliveryLog, error) {
	ctx, span := s.tracer.Start(ctx, "PublishService.Publish",
		trace.WithAttributes(
			attribute.String("project.reference", cmd.ProjectReference),
			attribute.String("service.kind", string(cmd.ServiceKind)),
		))
	defer span.End()

	log, err := s.svc.Publish(ctx, cmd)
	span.SetAttributes(
		attribute.String("log.id", log.ID),
		attribute.String("log.channel", string(log.Channel)),
		attribute.String("log.status", string(log.Status)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return log, err
}

func (s *Service) UpdateStatus(ctx context.Context, tenant domain.Tenant, id string, status domain.LogStatus, reason string) (domain.DeliveryLog, error) {
	ctx, span := s.tracer.Start(ctx, "PublishService.UpdateStatus",
		trace.WithAttributes(
			attribute.String("log.id", id),
			attribute.String("log.status", string(status)),
		))
	defer span.End()

	log, err := s.svc.UpdateStatus(ctx, tenant, id, status, reason)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return log, err
}

func (s *Service) Find(ctx context.Context, tenant domain.Tenant, id string) (domain.DeliveryLog, error) {
	return s.svc.Find(ctx, tenant, id)
}
