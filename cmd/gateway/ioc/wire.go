//go:build wireinject

package ioc

import (
	"gitee.com/flycash/publish-gateway/internal/ioc"
	"gitee.com/flycash/publish-gateway/internal/repository"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	"gitee.com/flycash/publish-gateway/internal/service/tenant"
	publishweb "gitee.com/flycash/publish-gateway/internal/web/publish"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitIDGenerator,
		ioc.InitRedisClient,
		ioc.InitRedisCmd,
		ioc.InitGoCache,
		ioc.InitAccountCache,
		ioc.InitCrypter,
		ioc.InitZipkinTracer,
	)
	deliveryLogSet = wire.NewSet(
		repository.NewDeliveryLogRepository,
		dao.NewDeliveryLogDAO,
	)
	tenantSet = wire.NewSet(
		tenant.NewAuthenticator,
		repository.NewAccountRepository,
		dao.NewAccountDAO,
	)
	brokerSet = wire.NewSet(
		ioc.InitBrokerConfig,
		ioc.InitRabbitMQ,
		ioc.InitBrokerClient,
	)
	publishSet = wire.NewSet(
		ioc.InitResolver,
		ioc.InitProvider,
		ioc.InitPublishService,
		ioc.InitWorkerPool,
		ioc.InitIngestor,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		BaseSet,
		deliveryLogSet,
		tenantSet,
		brokerSet,
		publishSet,

		publishweb.NewHandler,
		ioc.InitLimiter,
		ioc.InitHTTPServer,

		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
