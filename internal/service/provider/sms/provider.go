package sms

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"gitee.com/flycash/publish-gateway/internal/service/provider"
	"gitee.com/flycash/publish-gateway/internal/service/provider/sms/client"
	"github.com/gotomicro/ego/core/elog"
)

var _ provider.Provider = (*smsProvider)(nil)

// ClientFactory 根据租户凭证构造对应供应商的客户端
type ClientFactory func(creds domain.ExternalCarrierCredentials) (client.Client, error)

const DefaultTimeout = 10 * time.Second

type Config struct {
	AliyunRegion   string `json:"aliyunRegion"`
	AliyunEndpoint string `json:"aliyunEndpoint"`
	// 只含一个 ${content} 变量的模板
	AliyunTemplateCode string `json:"aliyunTemplateCode"`
	// 单次调用第三方接口的超时，为 0 时使用 DefaultTimeout
	Timeout time.Duration `json:"timeout"`
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// DefaultFactories twilio 和阿里云
func DefaultFactories(cfg Config) map[string]ClientFactory {
	timeout := cfg.timeout()
	httpClient := &http.Client{Timeout: timeout}
	return map[string]ClientFactory{
		domain.CarrierProviderTwilio: func(creds domain.ExternalCarrierCredentials) (client.Client, error) {
			return client.NewTwilioSMS(creds.AccountID, creds.AuthToken, httpClient), nil
		},
		domain.CarrierProviderAliyun: func(creds domain.ExternalCarrierCredentials) (client.Client, error) {
			return client.NewAliyunSMS(cfg.AliyunRegion, cfg.AliyunEndpoint, cfg.AliyunTemplateCode,
				creds.AccountID, creds.AuthToken, timeout)
		},
	}
}

// smsProvider SMS供应商，按租户凭证里的供应商名称分发
type smsProvider struct {
	factories map[string]ClientFactory
	logger    *elog.Component
}

func NewSMSProvider(factories map[string]ClientFactory) provider.Provider {
	return &smsProvider{
		factories: factories,
		logger:    elog.DefaultLogger,
	}
}

func (p *smsProvider) Send(ctx context.Context, sms domain.OutboundSMS, creds domain.ExternalCarrierCredentials) (domain.CarrierReceipt, error) {
	if !creds.Complete() {
		return domain.CarrierReceipt{}, fmt.Errorf("%w: 第三方短信凭证不完整", errs.ErrChannelUnavailable)
	}
	factory, ok := p.factories[creds.ProviderName()]
	if !ok {
		return domain.CarrierReceipt{}, fmt.Errorf("%w: 不支持的短信供应商 %q", errs.ErrChannelUnavailable, creds.Provider)
	}
	c, err := factory(creds)
	if err != nil {
		return domain.CarrierReceipt{}, fmt.Errorf("%w: 创建 %s 客户端失败 %w", errs.ErrTransport, creds.ProviderName(), err)
	}

	resp, err := c.Send(ctx, client.SendReq{
		To:        sms.To,
		Body:      sms.Body,
		ServiceID: creds.MessagingServiceID,
	})
	if err != nil {
		p.logger.Warn("第三方短信发送失败",
			elog.String("provider", creds.ProviderName()),
			elog.String("to", sms.To),
			elog.FieldErr(err))
		return domain.CarrierReceipt{}, err
	}

	direction := domain.Direction(resp.Direction)
	if direction == "" {
		direction = domain.DirectionOutboundAPI
	}
	createdAt := resp.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return domain.CarrierReceipt{
		RemoteMessageID: resp.MessageID,
		From:            resp.From,
		Direction:       direction,
		Status:          MapRemoteStatus(resp.Status),
		ErrorReason:     resp.ErrorMessage,
		CreatedAt:       createdAt.UnixMilli(),
	}, nil
}

// MapRemoteStatus 对方仍在处理中的状态记为 requested，等待回执。
// sent 只表示已交给运营商，不是终态
func MapRemoteStatus(status string) domain.LogStatus {
	switch strings.ToLower(status) {
	case "delivered", "read":
		return domain.LogStatusDelivered
	case "failed", "undelivered":
		return domain.LogStatusFailed
	case "canceled", "cancelled":
		return domain.LogStatusCancelled
	default:
		return domain.LogStatusRequested
	}
}
