package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var _ Client = (*TwilioSMS)(nil)

// TwilioSMS 通过 messaging service 发送
type TwilioSMS struct {
	accountSID string
	client     *twilio.RestClient
}

// NewTwilioSMS httpClient 为空时使用 twilio 默认客户端
func NewTwilioSMS(accountSID, authToken string, httpClient *http.Client) *TwilioSMS {
	params := twilio.ClientParams{Username: accountSID, Password: authToken}
	if httpClient != nil {
		c := &twilioclient.Client{
			Credentials: twilioclient.NewCredentials(accountSID, authToken),
			HTTPClient:  httpClient,
		}
		c.SetAccountSid(accountSID)
		params.Client = c
	}
	return &TwilioSMS{
		accountSID: accountSID,
		client:     twilio.NewRestClientWithParams(params),
	}
}

func (t *TwilioSMS) Send(_ context.Context, req SendReq) (SendResp, error) {
	params := &openapi.CreateMessageParams{}
	params.SetPathAccountSid(t.accountSID)
	params.SetTo(req.To)
	params.SetBody(req.Body)
	params.SetMessagingServiceSid(req.ServiceID)

	msg, err := t.client.Api.CreateMessage(params)
	if err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			return SendResp{}, &errs.CarrierRejectedError{
				Provider: domain.CarrierProviderTwilio,
				Code:     fmt.Sprintf("%d", restErr.Code),
				Message:  restErr.Message,
			}
		}
		return SendResp{}, fmt.Errorf("%w: twilio %w", errs.ErrTransport, err)
	}

	resp := SendResp{
		MessageID:    deref(msg.Sid),
		From:         deref(msg.From),
		To:           deref(msg.To),
		Direction:    deref(msg.Direction),
		Status:       deref(msg.Status),
		ErrorMessage: deref(msg.ErrorMessage),
		CreatedAt:    time.Now(),
	}
	if created := deref(msg.DateCreated); created != "" {
		if ts, err1 := time.Parse(time.RFC1123Z, created); err1 == nil {
			resp.CreatedAt = ts
		}
	}
	return resp, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
