//go:build unit

package ioc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gitee.com/flycash/publish-gateway/internal/service/batch"
	"gitee.com/flycash/publish-gateway/internal/service/broker"
	publishmocks "gitee.com/flycash/publish-gateway/internal/service/publish/mocks"
	tenantmocks "gitee.com/flycash/publish-gateway/internal/service/tenant/mocks"
	publishweb "gitee.com/flycash/publish-gateway/internal/web/publish"
	"github.com/alicebob/miniredis/v2"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v2"
)

// 用仓库自带的 config.yaml 构建不依赖外部服务的组件
func TestInit_FromConfigFile(t *testing.T) {
	f, err := os.Open("../../config/config.yaml")
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, econf.LoadFromReader(f, yaml.Unmarshal))

	brokerCfg := InitBrokerConfig()
	assert.Equal(t, "localhost", brokerCfg.Host)
	assert.Equal(t, 5*time.Second, brokerCfg.Timeout)
	assert.Equal(t, broker.ConnectionPerPublish, brokerCfg.ConnectionPolicy)

	pool := InitWorkerPool()
	require.NotNil(t, pool)
	defer func() {
		assert.NoError(t, pool.Shutdown(context.Background()))
	}()

	assert.NotNil(t, InitCrypter())
	_, err = InitIDGenerator().NextID()
	require.NoError(t, err)
	assert.NotNil(t, InitResolver())
	assert.NotNil(t, InitProvider())

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	assert.NotNil(t, InitAccountCache(InitGoCache(), rdb))
	limiter := InitLimiter(rdb)
	limited, err := limiter.Limit(context.Background(), "AC1")
	require.NoError(t, err)
	assert.False(t, limited)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := publishmocks.NewMockService(ctrl)
	handler := publishweb.NewHandler(svc, batch.NewIngestor(svc, pool), tenantmocks.NewMockAuthenticator(ctrl))
	server := InitHTTPServer(handler, limiter)
	require.NotNil(t, server)

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/v1/projects/PJ1/logs/L1", nil)
	require.NoError(t, err)
	server.ServeHTTP(recorder, req)
	// 没有带 basic auth
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
