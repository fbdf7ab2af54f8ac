package publish

import (
	"errors"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
)

type failureKind int

const (
	failureNone failureKind = iota
	failureInvalidNumber
	failureNoChannel
	failureCarrierRejected
	failureTransport
	failureUnexpected
)

func (k failureKind) String() string {
	switch k {
	case failureNone:
		return "none"
	case failureInvalidNumber:
		return "invalid_number"
	case failureNoChannel:
		return "no_channel"
	case failureCarrierRejected:
		return "carrier_rejected"
	case failureTransport:
		return "transport"
	default:
		return "unexpected"
	}
}

// failure 投递过程中的失败，kind 决定日志状态和是否向上返回
type failure struct {
	kind failureKind
	err  error
}

func classify(err error) failure {
	switch {
	case err == nil:
		return failure{}
	case errors.Is(err, errs.ErrInvalidPhoneNumber),
		errors.Is(err, errs.ErrInvalidCountryCode),
		errors.Is(err, errs.ErrMissingCountryCode):
		return failure{kind: failureInvalidNumber, err: err}
	case errors.Is(err, errs.ErrChannelUnavailable):
		return failure{kind: failureNoChannel, err: err}
	case errors.Is(err, errs.ErrCarrierRejected):
		return failure{kind: failureCarrierRejected, err: err}
	case errors.Is(err, errs.ErrTransport):
		return failure{kind: failureTransport, err: err}
	default:
		return failure{kind: failureUnexpected, err: err}
	}
}

type decision struct {
	status    domain.LogStatus
	reason    string
	propagate bool
}

// decide 失败类型到日志状态的映射，无可用通道不返回错误
func decide(f failure) decision {
	switch f.kind {
	case failureNone:
		return decision{}
	case failureInvalidNumber:
		return decision{status: domain.LogStatusFailed, reason: f.err.Error(), propagate: true}
	case failureNoChannel:
		return decision{status: domain.LogStatusCancelled, reason: NoChannelReason}
	case failureCarrierRejected:
		reason := f.err.Error()
		var rejected *errs.CarrierRejectedError
		if errors.As(f.err, &rejected) {
			reason = rejected.Message
		}
		return decision{status: domain.LogStatusFailed, reason: reason, propagate: true}
	case failureTransport:
		return decision{status: domain.LogStatusFailed, reason: TransportReason, propagate: true}
	default:
		return decision{status: domain.LogStatusFailed, reason: UnexpectedReason, propagate: true}
	}
}
