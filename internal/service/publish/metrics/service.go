package metrics

import (
	"context"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/service/publish"
	"github.com/prometheus/client_golang/prometheus"
)

var _ publish.Service = (*Service)(nil)

var publishOutcomeCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "publish_outcome_total",
		Help: "消息发布结果统计",
	},
	[]string{"service", "channel", "status"},
)

func init() {
	prometheus.MustRegister(publishOutcomeCounter)
}

// Service 按通道和最终状态统计发布结果
type Service struct {
	svc publish.Service
}

func NewService(svc publish.Service) *Service {
	return &Service{svc: svc}
}

func (s *Service) Publish(ctx context.Context, cmd domain.PublishCommand) (domain.DeliveryLog, error) {
	log, err := s.svc.Publish(ctx, cmd)
	status := string(log.Status)
	if status == "" {
		// 校验失败或者写日志失败
		status = "rejected"
	}
	channel := string(log.Channel)
	if channel == "" {
		channel = "none"
	}
	publishOutcomeCounter.WithLabelValues(string(cmd.ServiceKind), channel, status).Inc()
	return log, err
}

func (s *Service) UpdateStatus(ctx context.Context, tenant domain.Tenant, id string, status domain.LogStatus, reason string) (domain.DeliveryLog, error) {
	return s.svc.UpdateStatus(ctx, tenant, id, status, reason)
}

func (s *Service) Find(ctx context.Context, tenant domain.Tenant, id string) (domain.DeliveryLog, error) {
	return s.svc.Find(ctx, tenant, id)
}
