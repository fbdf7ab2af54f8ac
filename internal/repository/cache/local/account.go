package local

import (
	"context"

	"gitee.com/flycash/publish-gateway/internal/repository/cache"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	ca "github.com/patrickmn/go-cache"
)

var _ cache.AccountCache = (*Cache)(nil)

type Cache struct {
	c *ca.Cache
}

func NewLocalCache(c *ca.Cache) *Cache {
	return &Cache{c: c}
}

func (l *Cache) GetAccount(_ context.Context, accountSid string) (dao.Account, error) {
	v, ok := l.c.Get(cache.AccountKey(accountSid))
	if !ok {
		return dao.Account{}, cache.ErrKeyNotFound
	}
	return v.(dao.Account), nil
}

func (l *Cache) SetAccount(_ context.Context, account dao.Account) error {
	l.c.Set(cache.AccountKey(account.AccountSid), account, ca.DefaultExpiration)
	return nil
}

func (l *Cache) GetProject(_ context.Context, reference string) (dao.Project, error) {
	v, ok := l.c.Get(cache.ProjectKey(reference))
	if !ok {
		return dao.Project{}, cache.ErrKeyNotFound
	}
	return v.(dao.Project), nil
}

func (l *Cache) SetProject(_ context.Context, project dao.Project) error {
	l.c.Set(cache.ProjectKey(project.Reference), project, ca.DefaultExpiration)
	return nil
}
