package dao

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// Account 租户账号，敏感字段为 AES-GCM 密文。账号的增删改不在本服务
type Account struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	AccountSid       string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_account_sid;comment:'也是消息队列的虚拟主机'"`
	AuthToken        string `gorm:"type:VARCHAR(512);NOT NULL;comment:'加密'"`
	CarrierProvider  string `gorm:"type:VARCHAR(32);comment:'twilio, aliyun'"`
	CarrierAccountID string `gorm:"type:VARCHAR(128)"`
	CarrierAuthToken string `gorm:"type:VARCHAR(512);comment:'加密'"`
	CarrierServiceID string `gorm:"type:VARCHAR(128);comment:'messaging service sid 或发送方号码'"`
	Ctime            int64
	Utime            int64
}

func (Account) TableName() string {
	return "accounts"
}

type Project struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Reference   string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_reference;comment:'也是 topic 交换机名称'"`
	UserID      int64  `gorm:"type:BIGINT;NOT NULL;index:idx_user_id"`
	Name        string `gorm:"type:VARCHAR(128);NOT NULL"`
	Description string `gorm:"type:VARCHAR(512)"`
	Ctime       int64
	Utime       int64
}

func (Project) TableName() string {
	return "projects"
}

//go:generate mockgen -source=./account.go -destination=./mocks/account.mock.go -package=daomocks AccountDAO
type AccountDAO interface {
	FindAccountBySid(ctx context.Context, accountSid string) (Account, error)
	FindProjectByReference(ctx context.Context, reference string) (Project, error)
}

type accountDAO struct {
	db *egorm.Component
}

func NewAccountDAO(db *egorm.Component) AccountDAO {
	return &accountDAO{db: db}
}

func (a *accountDAO) FindAccountBySid(ctx context.Context, accountSid string) (Account, error) {
	var acc Account
	err := a.db.WithContext(ctx).Where("account_sid = ?", accountSid).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, fmt.Errorf("%w: %s", errs.ErrAccountNotFound, accountSid)
	}
	return acc, err
}

func (a *accountDAO) FindProjectByReference(ctx context.Context, reference string) (Project, error) {
	var p Project
	err := a.db.WithContext(ctx).Where("reference = ?", reference).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Project{}, fmt.Errorf("%w: %s", errs.ErrProjectNotFound, reference)
	}
	return p, err
}
