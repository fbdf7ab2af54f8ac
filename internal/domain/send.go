package domain

import (
	"fmt"
	"strings"

	"gitee.com/flycash/publish-gateway/internal/errs"
)

// 与 delivery_logs 的列宽一致
const (
	MaxClientSIDLength = 64
	MaxRecipientLength = 64
)

// SendRequest 归一化之后的单条发送请求，只在一次流水线中存活
type SendRequest struct {
	Recipient        string
	Body             string
	ClientSuppliedID string
}

func (r SendRequest) Validate() error {
	if strings.TrimSpace(r.Recipient) == "" {
		return fmt.Errorf("%w: Recipient = %q", errs.ErrInvalidParameter, r.Recipient)
	}
	if len(r.Recipient) > MaxRecipientLength {
		return fmt.Errorf("%w: 号码超过 %d 个字符", errs.ErrInvalidParameter, MaxRecipientLength)
	}
	if r.Body == "" {
		return fmt.Errorf("%w: Body = %q", errs.ErrInvalidParameter, r.Body)
	}
	if len(r.ClientSuppliedID) > MaxClientSIDLength {
		return fmt.Errorf("%w: sid 超过 %d 个字符", errs.ErrInvalidParameter, MaxClientSIDLength)
	}
	return nil
}

// PublishCommand 单条发布的完整输入
type PublishCommand struct {
	ServiceKind      ServiceKind
	ProjectReference string
	Tenant           Tenant
	Request          SendRequest
	// LogID 预先分配的日志 ID，批量发布需要在应答里返回，为空时由发布服务生成
	LogID string
}

func (c PublishCommand) Validate() error {
	if !c.ServiceKind.Supported() {
		return fmt.Errorf("%w: %q", errs.ErrUnsupportedService, c.ServiceKind)
	}
	if c.ProjectReference == "" {
		return fmt.Errorf("%w: ProjectReference = %q", errs.ErrInvalidParameter, c.ProjectReference)
	}
	return c.Request.Validate()
}

// OutboundSMS 交给第三方短信接口的内容
type OutboundSMS struct {
	To   string
	Body string
}

// CarrierReceipt 第三方短信接口的受理结果
type CarrierReceipt struct {
	RemoteMessageID string
	From            string
	Direction       Direction
	Status          LogStatus
	ErrorReason     string
	CreatedAt       int64 // 毫秒
}

// BrokerMessage 投递到租户消息队列的一条消息
type BrokerMessage struct {
	VirtualHost string // 租户虚拟主机
	Exchange    string // 项目的 topic 交换机
	RoutingKey  string
	Text        string
	Number      string
}
