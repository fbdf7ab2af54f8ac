package web

import (
	"errors"
	"net/http"

	"gitee.com/flycash/publish-gateway/internal/errs"
)

// Result 统一的响应结构
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// StatusOf 错误到 HTTP 状态码的唯一映射
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrInvalidParameter),
		errors.Is(err, errs.ErrUnsupportedService),
		errors.Is(err, errs.ErrInvalidPhoneNumber),
		errors.Is(err, errs.ErrInvalidCountryCode),
		errors.Is(err, errs.ErrMissingCountryCode),
		errors.Is(err, errs.ErrCarrierRejected):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrDeliveryLogNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDeliveryLogDuplicate),
		errors.Is(err, errs.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrWorkerPoolExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResult 5xx 不向调用方暴露内部错误
func ErrorResult(err error) (int, Result) {
	code := StatusOf(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal server error"
	}
	return code, Result{Code: code, Msg: msg}
}
