//go:build unit

package client

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/publish-gateway/internal/errs"
	dysmsapi "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSMSSender struct {
	req  *dysmsapi.SendSmsRequest
	resp *dysmsapi.SendSmsResponse
	err  error
}

func (f *fakeSMSSender) SendSms(request *dysmsapi.SendSmsRequest) (*dysmsapi.SendSmsResponse, error) {
	f.req = request
	return f.resp, f.err
}

func TestAliyunSMS_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		sender *fakeSMSSender
		assert func(t *testing.T, sender *fakeSMSSender, resp SendResp, err error)
	}{
		{
			name: "受理成功",
			sender: &fakeSMSSender{resp: &dysmsapi.SendSmsResponse{
				Body: &dysmsapi.SendSmsResponseBody{
					Code:      tea.String(OK),
					Message:   tea.String("OK"),
					BizId:     tea.String("biz-1"),
					RequestId: tea.String("req-1"),
				},
			}},
			assert: func(t *testing.T, sender *fakeSMSSender, resp SendResp, err error) {
				require.NoError(t, err)
				assert.Equal(t, "14155550123", tea.StringValue(sender.req.PhoneNumbers))
				assert.Equal(t, "Gateway", tea.StringValue(sender.req.SignName))
				assert.Equal(t, "SMS_0001", tea.StringValue(sender.req.TemplateCode))
				assert.JSONEq(t, `{"content":"hello"}`, tea.StringValue(sender.req.TemplateParam))
				assert.Equal(t, "biz-1", resp.MessageID)
				assert.Equal(t, StatusAccepted, resp.Status)
				assert.Equal(t, DirectionOutboundAPI, resp.Direction)
			},
		},
		{
			name: "业务码拒绝",
			sender: &fakeSMSSender{resp: &dysmsapi.SendSmsResponse{
				Body: &dysmsapi.SendSmsResponseBody{
					Code:    tea.String("isv.MOBILE_NUMBER_ILLEGAL"),
					Message: tea.String("invalid phone number"),
				},
			}},
			assert: func(t *testing.T, _ *fakeSMSSender, _ SendResp, err error) {
				var rejected *errs.CarrierRejectedError
				require.ErrorAs(t, err, &rejected)
				assert.Equal(t, "isv.MOBILE_NUMBER_ILLEGAL", rejected.Code)
				assert.Equal(t, "invalid phone number", rejected.Message)
			},
		},
		{
			name: "客户端错误",
			sender: &fakeSMSSender{err: &tea.SDKError{
				Code:       tea.String("InvalidAccessKeyId.NotFound"),
				Message:    tea.String("access key not found"),
				StatusCode: tea.Int(404),
			}},
			assert: func(t *testing.T, _ *fakeSMSSender, _ SendResp, err error) {
				assert.ErrorIs(t, err, errs.ErrCarrierRejected)
			},
		},
		{
			name:   "网络错误",
			sender: &fakeSMSSender{err: errors.New("connection reset")},
			assert: func(t *testing.T, _ *fakeSMSSender, _ SendResp, err error) {
				assert.ErrorIs(t, err, errs.ErrTransport)
			},
		},
		{
			name:   "空响应",
			sender: &fakeSMSSender{},
			assert: func(t *testing.T, _ *fakeSMSSender, _ SendResp, err error) {
				assert.ErrorIs(t, err, errs.ErrTransport)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := &AliyunSMS{client: tc.sender, templateCode: "SMS_0001"}
			resp, err := c.Send(context.Background(), SendReq{To: "+14155550123", Body: "hello", ServiceID: "Gateway"})
			tc.assert(t, tc.sender, resp, err)
		})
	}
}
