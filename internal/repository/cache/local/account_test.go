//go:build unit

package local

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/publish-gateway/internal/repository/cache"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	ca "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()
	c := NewLocalCache(ca.New(time.Minute, time.Minute))
	ctx := context.Background()

	_, err := c.GetAccount(ctx, "AC1")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
	_, err = c.GetProject(ctx, "PJ1")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	require.NoError(t, c.SetAccount(ctx, dao.Account{ID: 1, AccountSid: "AC1"}))
	require.NoError(t, c.SetProject(ctx, dao.Project{ID: 1, Reference: "PJ1"}))

	acc, err := c.GetAccount(ctx, "AC1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)
	p, err := c.GetProject(ctx, "PJ1")
	require.NoError(t, err)
	assert.Equal(t, "PJ1", p.Reference)
}
