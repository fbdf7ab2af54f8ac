package tenant

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"gitee.com/flycash/publish-gateway/internal/repository"
)

//go:generate mockgen -source=./service.go -destination=./mocks/service.mock.go -package=tenantmocks Authenticator
type Authenticator interface {
	// Authenticate 校验 API key 并确认项目属于该租户，失败统一返回 errs.ErrUnauthorized
	Authenticate(ctx context.Context, accountSid, authToken, projectReference string) (domain.Tenant, error)
}

type authenticator struct {
	repo repository.AccountRepository
}

func NewAuthenticator(repo repository.AccountRepository) Authenticator {
	return &authenticator{repo: repo}
}

func (a *authenticator) Authenticate(ctx context.Context, accountSid, authToken, projectReference string) (domain.Tenant, error) {
	if accountSid == "" || authToken == "" {
		return domain.Tenant{}, fmt.Errorf("%w: 缺少 API key", errs.ErrUnauthorized)
	}
	account, err := a.repo.FindAccount(ctx, accountSid)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return domain.Tenant{}, fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
		}
		return domain.Tenant{}, err
	}
	if subtle.ConstantTimeCompare([]byte(account.AuthToken), []byte(authToken)) != 1 {
		return domain.Tenant{}, fmt.Errorf("%w: API key 不匹配", errs.ErrUnauthorized)
	}

	project, err := a.repo.FindProject(ctx, projectReference)
	if err != nil {
		if errors.Is(err, errs.ErrProjectNotFound) {
			return domain.Tenant{}, fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
		}
		return domain.Tenant{}, err
	}
	if project.OwnerUserID != account.ID {
		return domain.Tenant{}, fmt.Errorf("%w: 项目 %s 不属于当前账号", errs.ErrUnauthorized, projectReference)
	}
	return domain.Tenant{
		UserID:      account.ID,
		AccountSID:  account.AccountSID,
		Credentials: account.Credentials,
	}, nil
}
