package ioc

import (
	"gitee.com/flycash/publish-gateway/internal/service/carrier"
	"gitee.com/flycash/publish-gateway/internal/service/provider"
	providermetrics "gitee.com/flycash/publish-gateway/internal/service/provider/metrics"
	"gitee.com/flycash/publish-gateway/internal/service/provider/sms"
	providertracing "gitee.com/flycash/publish-gateway/internal/service/provider/tracing"
	"github.com/gotomicro/ego/core/econf"
)

func InitResolver() carrier.Resolver {
	return carrier.NewPhoneNumberResolver(carrier.DefaultTable())
}

// InitProvider 第三方短信通道，凭证来自租户，这里只有阿里云的接入点配置
func InitProvider() provider.Provider {
	var cfg sms.Config
	if err := econf.UnmarshalKey("carrier", &cfg); err != nil {
		panic(err)
	}
	p := sms.NewSMSProvider(sms.DefaultFactories(cfg))
	return providertracing.NewProvider(providermetrics.NewProvider(p))
}
