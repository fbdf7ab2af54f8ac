package publish

import (
	"context"

	"gitee.com/flycash/publish-gateway/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/service.mock.go -package=publishmocks Service
type Service interface {
	// Publish 发布单条消息，校验通过之后无论结果如何都恰好写一条投递日志
	Publish(ctx context.Context, cmd domain.PublishCommand) (domain.DeliveryLog, error)
	// UpdateStatus 投递回执，只允许 requested 流转到终态一次
	UpdateStatus(ctx context.Context, tenant domain.Tenant, id string, status domain.LogStatus, reason string) (domain.DeliveryLog, error)
	// Find 只能查到租户自己的日志
	Find(ctx context.Context, tenant domain.Tenant, id string) (domain.DeliveryLog, error)
}
