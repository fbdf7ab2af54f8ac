package provider

import (
	"context"

	"gitee.com/flycash/publish-gateway/internal/domain"
)

// Provider 第三方短信通道，使用租户自己的凭证
//
//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks Provider
type Provider interface {
	// Send 凭证不完整返回 ErrChannelUnavailable，对方拒绝返回 *errs.CarrierRejectedError
	Send(ctx context.Context, sms domain.OutboundSMS, creds domain.ExternalCarrierCredentials) (domain.CarrierReceipt, error)
}
