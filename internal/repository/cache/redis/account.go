package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gitee.com/flycash/publish-gateway/internal/repository/cache"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	"github.com/redis/go-redis/v9"
)

var _ cache.AccountCache = (*Cache)(nil)

type Cache struct {
	rdb redis.Cmdable
}

func NewCache(rdb redis.Cmdable) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) GetAccount(ctx context.Context, accountSid string) (dao.Account, error) {
	var acc dao.Account
	err := c.get(ctx, cache.AccountKey(accountSid), &acc)
	return acc, err
}

func (c *Cache) SetAccount(ctx context.Context, account dao.Account) error {
	return c.set(ctx, cache.AccountKey(account.AccountSid), account)
}

func (c *Cache) GetProject(ctx context.Context, reference string) (dao.Project, error) {
	var p dao.Project
	err := c.get(ctx, cache.ProjectKey(reference), &p)
	return p, err
}

func (c *Cache) SetProject(ctx context.Context, project dao.Project) error {
	return c.set(ctx, cache.ProjectKey(project.Reference), project)
}

func (c *Cache) get(ctx context.Context, key string, val any) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cache.ErrKeyNotFound
		}
		return fmt.Errorf("failed to get %s from redis %w", key, err)
	}
	if err = json.Unmarshal(data, val); err != nil {
		return fmt.Errorf("failed to unmarshal %s %w", key, err)
	}
	return nil
}

func (c *Cache) set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %w", key, err)
	}
	if err = c.rdb.Set(ctx, key, data, cache.DefaultExpiredTime).Err(); err != nil {
		return fmt.Errorf("failed to set %s to redis %w", key, err)
	}
	return nil
}
