package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/publish-gateway/internal/repository/dao"
)

const (
	AccountPrefix      = "account"
	ProjectPrefix      = "project"
	DefaultExpiredTime = 10 * time.Minute
)

var ErrKeyNotFound = errors.New("key not found")

// AccountCache 账号、项目查询缓存，账号中的敏感字段保持密文
type AccountCache interface {
	GetAccount(ctx context.Context, accountSid string) (dao.Account, error)
	SetAccount(ctx context.Context, account dao.Account) error
	GetProject(ctx context.Context, reference string) (dao.Project, error)
	SetProject(ctx context.Context, project dao.Project) error
}

func AccountKey(accountSid string) string {
	return fmt.Sprintf("%s:%s", AccountPrefix, accountSid)
}

func ProjectKey(reference string) string {
	return fmt.Sprintf("%s:%s", ProjectPrefix, reference)
}
