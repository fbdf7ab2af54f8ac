package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./delivery_log.go -destination=./mocks/delivery_log.mock.go -package=daomocks DeliveryLogDAO
type DeliveryLogDAO interface {
	// Insert 追加一条投递日志
	Insert(ctx context.Context, log DeliveryLog) (DeliveryLog, error)
	// UpdateStatus 更新状态，记录不存在时返回 ErrDeliveryLogNotFound
	UpdateStatus(ctx context.Context, sid, status, reason string) error
	FindBySid(ctx context.Context, sid string) (DeliveryLog, error)
}

// DeliveryLog 投递日志表，只追加，状态最多更新一次
type DeliveryLog struct {
	ID               uint64 `gorm:"primaryKey;comment:'sonyflake ID'"`
	Sid              string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_sid;comment:'对外暴露的日志ID，服务端生成'"`
	ClientSid        string `gorm:"type:VARCHAR(64);index:idx_client_sid;comment:'客户端提供的sid，不唯一'"`
	ServiceKind      string `gorm:"type:VARCHAR(32);NOT NULL;comment:'服务类型'"`
	ServiceName      string `gorm:"type:VARCHAR(255);comment:'路由标识，即队列名'"`
	ProjectReference string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_project_user,priority:1"`
	UserID           int64  `gorm:"type:BIGINT;NOT NULL;index:idx_project_user,priority:2"`
	Direction        string `gorm:"type:VARCHAR(32);NOT NULL"`
	Recipient        string `gorm:"type:VARCHAR(64);NOT NULL;comment:'接收号码'"`
	Sender           string `gorm:"type:VARCHAR(64)"`
	Channel          string `gorm:"type:VARCHAR(32);comment:'external-carrier, broker-client'"`
	Status           string `gorm:"type:ENUM('requested','delivered','failed','cancelled');NOT NULL;comment:'投递状态'"`
	Reason           string `gorm:"type:TEXT;comment:'失败原因'"`
	RemoteSid        string `gorm:"type:VARCHAR(64);index:idx_remote_sid;comment:'第三方短信接口的消息ID'"`
	Body             string `gorm:"type:TEXT;NOT NULL"`
	Ctime            int64
	Utime            int64
}

func (DeliveryLog) TableName() string {
	return "delivery_logs"
}

type deliveryLogDAO struct {
	db *egorm.Component
}

func NewDeliveryLogDAO(db *egorm.Component) DeliveryLogDAO {
	return &deliveryLogDAO{db: db}
}

func (d *deliveryLogDAO) Insert(ctx context.Context, log DeliveryLog) (DeliveryLog, error) {
	now := time.Now().UnixMilli()
	if log.Ctime == 0 {
		log.Ctime = now
	}
	log.Utime = now
	err := d.db.WithContext(ctx).Create(&log).Error
	if err != nil {
		if isUniqueConstraintError(err) {
			return DeliveryLog{}, fmt.Errorf("%w: sid = %s", errs.ErrDeliveryLogDuplicate, log.Sid)
		}
		return DeliveryLog{}, err
	}
	return log, nil
}

func (d *deliveryLogDAO) UpdateStatus(ctx context.Context, sid, status, reason string) error {
	res := d.db.WithContext(ctx).Model(&DeliveryLog{}).
		Where("sid = ?", sid).
		Updates(map[string]any{
			"status": status,
			"reason": reason,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: sid = %s", errs.ErrDeliveryLogNotFound, sid)
	}
	return nil
}

func (d *deliveryLogDAO) FindBySid(ctx context.Context, sid string) (DeliveryLog, error) {
	var log DeliveryLog
	err := d.db.WithContext(ctx).Where("sid = ?", sid).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DeliveryLog{}, fmt.Errorf("%w: sid = %s", errs.ErrDeliveryLogNotFound, sid)
	}
	return log, err
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func isUniqueConstraintError(err error) bool {
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
