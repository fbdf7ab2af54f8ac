package repository

import (
	"context"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	"github.com/sony/sonyflake"
)

//go:generate mockgen -source=./delivery_log.go -destination=./mocks/delivery_log.mock.go -package=repomocks DeliveryLogRepository
type DeliveryLogRepository interface {
	// Append 追加一条日志，ID 由调用方分配，要么成功要么返回存储错误
	Append(ctx context.Context, log domain.DeliveryLog) (domain.DeliveryLog, error)
	// UpdateStatus 记录不存在时返回 ErrDeliveryLogNotFound，不做终态保护，由调用方保证只调用一次
	UpdateStatus(ctx context.Context, id string, status domain.LogStatus, reason string) error
	FindByID(ctx context.Context, id string) (domain.DeliveryLog, error)
}

type deliveryLogRepository struct {
	dao         dao.DeliveryLogDAO
	idGenerator *sonyflake.Sonyflake
}

func NewDeliveryLogRepository(d dao.DeliveryLogDAO, idGenerator *sonyflake.Sonyflake) DeliveryLogRepository {
	return &deliveryLogRepository{
		dao:         d,
		idGenerator: idGenerator,
	}
}

func (r *deliveryLogRepository) Append(ctx context.Context, log domain.DeliveryLog) (domain.DeliveryLog, error) {
	if err := log.Validate(); err != nil {
		return domain.DeliveryLog{}, err
	}
	rowID, err := r.idGenerator.NextID()
	if err != nil {
		return domain.DeliveryLog{}, err
	}
	entity := r.toEntity(log)
	entity.ID = rowID
	created, err := r.dao.Insert(ctx, entity)
	if err != nil {
		return domain.DeliveryLog{}, err
	}
	return r.toDomain(created), nil
}

func (r *deliveryLogRepository) UpdateStatus(ctx context.Context, id string, status domain.LogStatus, reason string) error {
	return r.dao.UpdateStatus(ctx, id, string(status), reason)
}

func (r *deliveryLogRepository) FindByID(ctx context.Context, id string) (domain.DeliveryLog, error) {
	entity, err := r.dao.FindBySid(ctx, id)
	if err != nil {
		return domain.DeliveryLog{}, err
	}
	return r.toDomain(entity), nil
}

func (r *deliveryLogRepository) toEntity(log domain.DeliveryLog) dao.DeliveryLog {
	return dao.DeliveryLog{
		Sid:              log.ID,
		ClientSid:        log.ClientSID,
		ServiceKind:      string(log.ServiceKind),
		ServiceName:      log.ServiceName,
		ProjectReference: log.ProjectReference,
		UserID:           log.OwnerUserID,
		Direction:        string(log.Direction),
		Recipient:        log.Recipient,
		Sender:           log.Sender,
		Channel:          string(log.Channel),
		Status:           string(log.Status),
		Reason:           log.FailureReason,
		RemoteSid:        log.RemoteMessageID,
		Body:             log.Body,
		Ctime:            log.CreatedAt,
	}
}

func (r *deliveryLogRepository) toDomain(entity dao.DeliveryLog) domain.DeliveryLog {
	return domain.DeliveryLog{
		ID:               entity.Sid,
		ClientSID:        entity.ClientSid,
		ServiceKind:      domain.ServiceKind(entity.ServiceKind),
		ServiceName:      entity.ServiceName,
		ProjectReference: entity.ProjectReference,
		Direction:        domain.Direction(entity.Direction),
		Recipient:        entity.Recipient,
		Sender:           entity.Sender,
		Channel:          domain.LogChannel(entity.Channel),
		Status:           domain.LogStatus(entity.Status),
		FailureReason:    entity.Reason,
		RemoteMessageID:  entity.RemoteSid,
		Body:             entity.Body,
		OwnerUserID:      entity.UserID,
		CreatedAt:        entity.Ctime,
	}
}
