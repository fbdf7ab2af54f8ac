package ioc

import (
	"gitee.com/flycash/publish-gateway/internal/pkg/workerpool"
	"gitee.com/flycash/publish-gateway/internal/repository"
	"gitee.com/flycash/publish-gateway/internal/service/batch"
	"gitee.com/flycash/publish-gateway/internal/service/broker"
	"gitee.com/flycash/publish-gateway/internal/service/carrier"
	"gitee.com/flycash/publish-gateway/internal/service/provider"
	"gitee.com/flycash/publish-gateway/internal/service/publish"
	publishmetrics "gitee.com/flycash/publish-gateway/internal/service/publish/metrics"
	publishtracing "gitee.com/flycash/publish-gateway/internal/service/publish/tracing"
	"github.com/gotomicro/ego/core/econf"
)

func InitPublishService(
	resolver carrier.Resolver,
	brokerClient broker.Client,
	p provider.Provider,
	repo repository.DeliveryLogRepository,
) publish.Service {
	svc := publish.NewService(resolver, brokerClient, p, repo)
	return publishtracing.NewService(publishmetrics.NewService(svc))
}

func InitWorkerPool() *workerpool.Pool {
	var cfg workerpool.Config
	if err := econf.UnmarshalKey("workerpool", &cfg); err != nil {
		panic(err)
	}
	pool, err := workerpool.New(cfg)
	if err != nil {
		panic(err)
	}
	return pool
}

func InitIngestor(svc publish.Service, pool *workerpool.Pool) *batch.Ingestor {
	return batch.NewIngestor(svc, pool)
}
