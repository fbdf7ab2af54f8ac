//go:build unit

package metrics

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/publish-gateway/internal/domain"
	brokermocks "gitee.com/flycash/publish-gateway/internal/service/broker/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := brokermocks.NewMockClient(ctrl)
	m.EXPECT().QueueExists(gomock.Any(), "PJ1_Cameroon_MTN", "AC1").Return(true, nil)
	m.EXPECT().QueueExists(gomock.Any(), "PJ1_Cameroon_Orange", "AC1").Return(false, nil)
	m.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	before := testutil.ToFloat64(callCounter.WithLabelValues("publish", "error"))
	c := NewClient(m)

	exists, err := c.QueueExists(context.Background(), "PJ1_Cameroon_MTN", "AC1")
	assert.NoError(t, err)
	assert.True(t, exists)
	exists, err = c.QueueExists(context.Background(), "PJ1_Cameroon_Orange", "AC1")
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.Error(t, c.Publish(context.Background(), domain.BrokerMessage{}))

	assert.Equal(t, before+1, testutil.ToFloat64(callCounter.WithLabelValues("publish", "error")))
}
