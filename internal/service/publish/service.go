package publish

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"gitee.com/flycash/publish-gateway/internal/repository"
	"gitee.com/flycash/publish-gateway/internal/service/broker"
	"gitee.com/flycash/publish-gateway/internal/service/carrier"
	"gitee.com/flycash/publish-gateway/internal/service/provider"
	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
)

const (
	NoChannelReason  = "No available channel. Start a Deku SMS client or provide your Twilio messaging credentials."
	TransportReason  = "Failed to reach the delivery channel."
	UnexpectedReason = "Internal error while publishing the message."
)

var _ Service = (*service)(nil)

type service struct {
	resolver carrier.Resolver
	broker   broker.Client
	provider provider.Provider
	repo     repository.DeliveryLogRepository
	newLogID func() (string, error)
	logger   *elog.Component
}

// NewLogID 投递日志 ID，32位大写十六进制。批量发布在应答前用它预先分配
func NewLogID() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.ReplaceAll(u.String(), "-", "")), nil
}

func NewService(
	resolver carrier.Resolver,
	brokerClient broker.Client,
	p provider.Provider,
	repo repository.DeliveryLogRepository,
) Service {
	return &service{
		resolver: resolver,
		broker:   brokerClient,
		provider: p,
		repo:     repo,
		newLogID: NewLogID,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Publish(ctx context.Context, cmd domain.PublishCommand) (domain.DeliveryLog, error) {
	// 校验失败不进入状态机，也不写日志
	if err := cmd.Validate(); err != nil {
		return domain.DeliveryLog{}, err
	}
	logID := cmd.LogID
	if logID == "" {
		id, err := s.newLogID()
		if err != nil {
			return domain.DeliveryLog{}, err
		}
		logID = id
	}

	log := domain.DeliveryLog{
		ID:               logID,
		ClientSID:        cmd.Request.ClientSuppliedID,
		ServiceKind:      cmd.ServiceKind,
		ProjectReference: cmd.ProjectReference,
		Direction:        domain.DirectionOutboundAPI,
		Recipient:        cmd.Request.Recipient,
		Channel:          domain.LogChannelNone,
		Body:             cmd.Request.Body,
		OwnerUserID:      cmd.Tenant.UserID,
		CreatedAt:        time.Now().UnixMilli(),
	}
	f := s.deliver(ctx, cmd, &log)
	d := decide(f)
	if f.kind != failureNone {
		log.Status = d.status
		log.FailureReason = d.reason
	}

	saved, err := s.repo.Append(ctx, log)
	if err != nil {
		s.logger.Error("写入投递日志失败",
			elog.String("project", cmd.ProjectReference),
			elog.String("status", string(log.Status)),
			elog.FieldErr(err))
		return domain.DeliveryLog{}, err
	}
	if f.kind != failureNone {
		s.logger.Warn("消息发布失败",
			elog.String("logId", saved.ID),
			elog.String("kind", f.kind.String()),
			elog.FieldErr(f.err))
	}
	if d.propagate {
		return saved, f.err
	}
	return saved, nil
}

// deliver 依次解析路由、选择通道并投递，成功时直接填充日志
func (s *service) deliver(ctx context.Context, cmd domain.PublishCommand, log *domain.DeliveryLog) failure {
	serviceName, err := carrier.RoutingIdentifier(s.resolver, cmd.ProjectReference, cmd.Request.Recipient)
	if err != nil {
		return classify(err)
	}
	log.ServiceName = serviceName

	vhost := cmd.Tenant.Credentials.VirtualHost
	exists, err := s.broker.QueueExists(ctx, serviceName, vhost)
	if err != nil {
		return classify(err)
	}

	// 队列存在时优先走租户自建客户端
	if exists {
		log.Channel = domain.LogChannelBrokerClient
		err = s.broker.Publish(ctx, domain.BrokerMessage{
			VirtualHost: vhost,
			Exchange:    cmd.ProjectReference,
			RoutingKey:  domain.RoutingKey(serviceName),
			Text:        cmd.Request.Body,
			Number:      cmd.Request.Recipient,
		})
		if err != nil {
			return classify(err)
		}
		log.Status = domain.LogStatusRequested
		return failure{}
	}

	creds := cmd.Tenant.Credentials.Carrier
	if !creds.Complete() {
		return failure{kind: failureNoChannel, err: errs.ErrChannelUnavailable}
	}
	log.Channel = domain.LogChannelExternalCarrier
	receipt, err := s.provider.Send(ctx, domain.OutboundSMS{
		To:   cmd.Request.Recipient,
		Body: cmd.Request.Body,
	}, creds)
	if err != nil {
		return classify(err)
	}
	log.Sender = receipt.From
	log.Direction = receipt.Direction
	log.Status = receipt.Status
	log.FailureReason = receipt.ErrorReason
	log.RemoteMessageID = receipt.RemoteMessageID
	if receipt.CreatedAt > 0 {
		log.CreatedAt = receipt.CreatedAt
	}
	return failure{}
}

func (s *service) UpdateStatus(ctx context.Context, tenant domain.Tenant, id string, status domain.LogStatus, reason string) (domain.DeliveryLog, error) {
	log, err := s.Find(ctx, tenant, id)
	if err != nil {
		return domain.DeliveryLog{}, err
	}
	if !log.Status.CanTransitTo(status) {
		return domain.DeliveryLog{}, fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, log.Status, status)
	}
	if err = s.repo.UpdateStatus(ctx, id, status, reason); err != nil {
		return domain.DeliveryLog{}, err
	}
	log.Status = status
	log.FailureReason = reason
	return log, nil
}

func (s *service) Find(ctx context.Context, tenant domain.Tenant, id string) (domain.DeliveryLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.DeliveryLog{}, err
	}
	if log.OwnerUserID != tenant.UserID {
		return domain.DeliveryLog{}, fmt.Errorf("%w: %s", errs.ErrDeliveryLogNotFound, id)
	}
	return log, nil
}

