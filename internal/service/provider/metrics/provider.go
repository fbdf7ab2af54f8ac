// Package metrics 为供应商实现添加指标收集的装饰器
package metrics

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"gitee.com/flycash/publish-gateway/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sendDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "provider_send_duration_seconds",
			Help:       "第三方短信发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"provider", "result"},
	)
	sendStatusCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_status_total",
			Help: "第三方短信发送结果统计",
		},
		[]string{"provider", "result"},
	)
)

func init() {
	prometheus.MustRegister(sendDurationSummary, sendStatusCounter)
}

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider provider.Provider
}

func NewProvider(p provider.Provider) *Provider {
	return &Provider{provider: p}
}

func (p *Provider) Send(ctx context.Context, sms domain.OutboundSMS, creds domain.ExternalCarrierCredentials) (domain.CarrierReceipt, error) {
	startTime := time.Now()
	receipt, err := p.provider.Send(ctx, sms, creds)
	result := resultOf(receipt, err)
	name := creds.ProviderName()
	sendStatusCounter.WithLabelValues(name, result).Inc()
	sendDurationSummary.WithLabelValues(name, result).Observe(time.Since(startTime).Seconds())
	return receipt, err
}

func resultOf(receipt domain.CarrierReceipt, err error) string {
	switch {
	case err == nil:
		return string(receipt.Status)
	case errors.Is(err, errs.ErrCarrierRejected):
		return "rejected"
	case errors.Is(err, errs.ErrChannelUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
