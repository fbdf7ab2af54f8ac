package repository

import (
	"context"
	"errors"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/pkg/cryptox"
	"gitee.com/flycash/publish-gateway/internal/repository/cache"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

// Account 解密之后的账号
type Account struct {
	ID          int64
	AccountSID  string
	AuthToken   string
	Credentials domain.TenantChannelCredentials
}

//go:generate mockgen -source=./account.go -destination=./mocks/account.mock.go -package=repomocks AccountRepository
type AccountRepository interface {
	FindAccount(ctx context.Context, accountSid string) (Account, error)
	FindProject(ctx context.Context, reference string) (domain.Project, error)
}

type accountRepository struct {
	dao     dao.AccountDAO
	cache   cache.AccountCache
	crypter *cryptox.AESGCM
	logger  *elog.Component
}

func NewAccountRepository(d dao.AccountDAO, c cache.AccountCache, crypter *cryptox.AESGCM) AccountRepository {
	return &accountRepository{
		dao:     d,
		cache:   c,
		crypter: crypter,
		logger:  elog.DefaultLogger,
	}
}

func (r *accountRepository) FindAccount(ctx context.Context, accountSid string) (Account, error) {
	// 缓存里存的是密文
	entity, err := r.cache.GetAccount(ctx, accountSid)
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			r.logger.Warn("读取账号缓存失败", elog.String("accountSid", accountSid), elog.FieldErr(err))
		}
		entity, err = r.dao.FindAccountBySid(ctx, accountSid)
		if err != nil {
			return Account{}, err
		}
		if err1 := r.cache.SetAccount(ctx, entity); err1 != nil {
			r.logger.Warn("写入账号缓存失败", elog.String("accountSid", accountSid), elog.FieldErr(err1))
		}
	}
	return r.decrypt(entity)
}

func (r *accountRepository) FindProject(ctx context.Context, reference string) (domain.Project, error) {
	entity, err := r.cache.GetProject(ctx, reference)
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			r.logger.Warn("读取项目缓存失败", elog.String("reference", reference), elog.FieldErr(err))
		}
		entity, err = r.dao.FindProjectByReference(ctx, reference)
		if err != nil {
			return domain.Project{}, err
		}
		if err1 := r.cache.SetProject(ctx, entity); err1 != nil {
			r.logger.Warn("写入项目缓存失败", elog.String("reference", reference), elog.FieldErr(err1))
		}
	}
	return domain.Project{
		ID:          entity.ID,
		Reference:   entity.Reference,
		OwnerUserID: entity.UserID,
		Name:        entity.Name,
		Description: entity.Description,
	}, nil
}

func (r *accountRepository) decrypt(entity dao.Account) (Account, error) {
	authToken, err := r.crypter.Decrypt(entity.AuthToken)
	if err != nil {
		return Account{}, err
	}
	carrierToken, err := r.crypter.DecryptOptional(entity.CarrierAuthToken)
	if err != nil {
		return Account{}, err
	}
	return Account{
		ID:         entity.ID,
		AccountSID: entity.AccountSid,
		AuthToken:  authToken,
		Credentials: domain.TenantChannelCredentials{
			VirtualHost: entity.AccountSid,
			Carrier: domain.ExternalCarrierCredentials{
				Provider:           entity.CarrierProvider,
				AccountID:          entity.CarrierAccountID,
				AuthToken:          carrierToken,
				MessagingServiceID: entity.CarrierServiceID,
			},
		},
	}, nil
}
