//go:build unit

package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: fmt.Errorf("%w: bad key", errs.ErrUnauthorized), want: http.StatusUnauthorized},
		{err: errs.ErrMissingCountryCode, want: http.StatusBadRequest},
		{err: &errs.CarrierRejectedError{Message: "bad"}, want: http.StatusBadRequest},
		{err: errs.ErrDeliveryLogNotFound, want: http.StatusNotFound},
		{err: errs.ErrInvalidStatusTransition, want: http.StatusConflict},
		{err: errs.ErrWorkerPoolExhausted, want: http.StatusServiceUnavailable},
		{err: errs.ErrTransport, want: http.StatusBadGateway},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, StatusOf(tc.err), fmt.Sprint(tc.err))
	}

	code, res := ErrorResult(errors.New("dsn leaked"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", res.Msg)
}
