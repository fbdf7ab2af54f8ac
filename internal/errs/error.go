package errs

import (
	"errors"
	"fmt"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrUnsupportedService  = errors.New("unsupported service")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAccountNotFound     = errors.New("account not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrWorkerPoolExhausted = errors.New("worker pool exhausted")

	// 号码解析
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrInvalidCountryCode = errors.New("invalid country code")
	ErrMissingCountryCode = errors.New("missing country code")
	ErrUnknownMCCMNC      = errors.New("unknown mcc mnc code")

	// 投递通道
	ErrChannelUnavailable = errors.New("no available channel")
	ErrCarrierRejected    = errors.New("carrier rejected")
	ErrTransport          = errors.New("transport error")

	// 投递日志
	ErrDeliveryLogNotFound     = errors.New("delivery log not found")
	ErrDeliveryLogDuplicate    = errors.New("delivery log id conflict")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// CarrierRejectedError 第三方短信接口拒绝了请求，Message 为对方返回的原始错误文本
type CarrierRejectedError struct {
	Provider string
	Code     string
	Message  string
}

func (e *CarrierRejectedError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrCarrierRejected.Error(), e.Provider, e.Code, e.Message)
}

func (e *CarrierRejectedError) Is(target error) bool {
	return target == ErrCarrierRejected
}
