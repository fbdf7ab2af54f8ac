//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	daomocks "gitee.com/flycash/publish-gateway/internal/repository/dao/mocks"
	"github.com/sony/sonyflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIDGenerator() *sonyflake.Sonyflake {
	return sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MachineID: func() (uint16, error) { return 1, nil },
	})
}

func TestDeliveryLogRepository_Append(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		log      domain.DeliveryLog
		mock     func(ctrl *gomock.Controller) dao.DeliveryLogDAO
		assertFn func(t *testing.T, got domain.DeliveryLog)
		wantErr  error
	}{
		{
			name: "缺少ID",
			log: domain.DeliveryLog{
				ServiceKind:      domain.ServiceKindSMS,
				ProjectReference: "PJ1",
				Status:           domain.LogStatusCancelled,
			},
			mock: func(ctrl *gomock.Controller) dao.DeliveryLogDAO {
				return daomocks.NewMockDeliveryLogDAO(ctrl)
			},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "预分配ID并保存客户端sid",
			log: domain.DeliveryLog{
				ID:               "0123456789ABCDEF0123456789ABCDEF",
				ClientSID:        "MYSID1",
				ServiceKind:      domain.ServiceKindSMS,
				ProjectReference: "PJ1",
				Status:           domain.LogStatusRequested,
				Channel:          domain.LogChannelExternalCarrier,
				RemoteMessageID:  "SM1",
			},
			mock: func(ctrl *gomock.Controller) dao.DeliveryLogDAO {
				m := daomocks.NewMockDeliveryLogDAO(ctrl)
				m.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l dao.DeliveryLog) (dao.DeliveryLog, error) {
						assert.NotZero(t, l.ID)
						assert.Equal(t, "0123456789ABCDEF0123456789ABCDEF", l.Sid)
						assert.Equal(t, "MYSID1", l.ClientSid)
						assert.Equal(t, "SM1", l.RemoteSid)
						assert.Equal(t, "external-carrier", l.Channel)
						return l, nil
					})
				return m
			},
			assertFn: func(t *testing.T, got domain.DeliveryLog) {
				assert.Equal(t, "0123456789ABCDEF0123456789ABCDEF", got.ID)
				assert.Equal(t, "MYSID1", got.ClientSID)
				assert.Equal(t, "SM1", got.RemoteMessageID)
				assert.Equal(t, domain.LogChannelExternalCarrier, got.Channel)
			},
		},
		{
			name: "非法状态",
			log:  domain.DeliveryLog{ID: "L1", ProjectReference: "PJ1", Status: "sending"},
			mock: func(ctrl *gomock.Controller) dao.DeliveryLogDAO {
				return daomocks.NewMockDeliveryLogDAO(ctrl)
			},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "存储失败",
			log:  domain.DeliveryLog{ID: "L1", ProjectReference: "PJ1", Status: domain.LogStatusFailed},
			mock: func(ctrl *gomock.Controller) dao.DeliveryLogDAO {
				m := daomocks.NewMockDeliveryLogDAO(ctrl)
				m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(dao.DeliveryLog{}, errs.ErrDeliveryLogDuplicate)
				return m
			},
			wantErr: errs.ErrDeliveryLogDuplicate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewDeliveryLogRepository(tc.mock(ctrl), newTestIDGenerator())
			got, err := repo.Append(context.Background(), tc.log)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			tc.assertFn(t, got)
		})
	}
}

func TestDeliveryLogRepository_UpdateStatus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := daomocks.NewMockDeliveryLogDAO(ctrl)
	m.EXPECT().UpdateStatus(gomock.Any(), "ABC", "delivered", "").Return(nil)
	m.EXPECT().UpdateStatus(gomock.Any(), "NOPE", "failed", "timeout").Return(errs.ErrDeliveryLogNotFound)

	repo := NewDeliveryLogRepository(m, newTestIDGenerator())
	require.NoError(t, repo.UpdateStatus(context.Background(), "ABC", domain.LogStatusDelivered, ""))
	err := repo.UpdateStatus(context.Background(), "NOPE", domain.LogStatusFailed, "timeout")
	assert.True(t, errors.Is(err, errs.ErrDeliveryLogNotFound))
}
