package domain

import (
	"fmt"

	"gitee.com/flycash/publish-gateway/internal/errs"
)

// ServiceKind 发布服务类型
type ServiceKind string

const (
	ServiceKindSMS          ServiceKind = "sms"          // 短信
	ServiceKindNotification ServiceKind = "notification" // 通知，暂未开放
)

// Supported 当前只有短信能走完整的发布流程
func (k ServiceKind) Supported() bool {
	return k == ServiceKindSMS
}

// Direction 消息方向
type Direction string

const (
	DirectionOutboundAPI Direction = "outbound-api"
	DirectionInboundAPI  Direction = "inbound-api"
)

// LogChannel 实际投递的通道
type LogChannel string

const (
	LogChannelNone            LogChannel = ""                 // 尚未决定或无可用通道
	LogChannelExternalCarrier LogChannel = "external-carrier" // 第三方短信接口
	LogChannelBrokerClient    LogChannel = "broker-client"    // 租户自建客户端，通过消息队列投递
)

// LogStatus 投递日志状态
type LogStatus string

const (
	LogStatusRequested LogStatus = "requested" // 已提交，等待回执
	LogStatusDelivered LogStatus = "delivered" // 已送达
	LogStatusFailed    LogStatus = "failed"    // 失败
	LogStatusCancelled LogStatus = "cancelled" // 已取消，没有可用通道
)

func (s LogStatus) IsTerminal() bool {
	return s == LogStatusDelivered || s == LogStatusFailed || s == LogStatusCancelled
}

func (s LogStatus) Valid() bool {
	return s == LogStatusRequested || s.IsTerminal()
}

// CanTransitTo 只允许 requested 流转到终态，且只能流转一次
func (s LogStatus) CanTransitTo(next LogStatus) bool {
	return s == LogStatusRequested && next.IsTerminal()
}

// DeliveryLog 每一次发布尝试对应一条投递日志
type DeliveryLog struct {
	ID               string      // 日志唯一标识，由发布服务生成
	ClientSID        string      // 客户端提供的 sid，原样保存，不要求唯一
	ServiceKind      ServiceKind // 服务类型
	ServiceName      string      // 路由标识，解析号码之前为空
	ProjectReference string      // 项目引用，也是交换机名称
	Direction        Direction
	Recipient        string
	Sender           string
	Channel          LogChannel
	Status           LogStatus
	FailureReason    string
	RemoteMessageID  string // 第三方短信接口返回的消息 ID，用于匹配回执
	Body             string
	OwnerUserID      int64
	CreatedAt        int64 // 毫秒
}

func (l DeliveryLog) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: ID 不能为空", errs.ErrInvalidParameter)
	}
	if l.ProjectReference == "" {
		return fmt.Errorf("%w: ProjectReference = %q", errs.ErrInvalidParameter, l.ProjectReference)
	}
	if !l.Status.Valid() {
		return fmt.Errorf("%w: Status = %q", errs.ErrInvalidParameter, l.Status)
	}
	return nil
}
