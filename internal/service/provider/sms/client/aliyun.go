package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
)

const (
	OK = "OK"
	// StatusAccepted 阿里云只返回受理结果，送达状态走回执
	StatusAccepted = "accepted"
	// aliyunContentParam 模板里承载正文的变量名，例如 ${content}
	aliyunContentParam = "content"
)

var _ Client = (*AliyunSMS)(nil)

type smsSender interface {
	SendSms(request *dysmsapi.SendSmsRequest) (*dysmsapi.SendSmsResponse, error)
}

// AliyunSMS 阿里云短信只支持模板发送，正文放进只有一个 content 变量的模板
type AliyunSMS struct {
	client       smsSender
	templateCode string
}

// NewAliyunSMS 创建阿里云短信实例，timeout 同时用作连接和读超时
func NewAliyunSMS(regionID, endpoint, templateCode, accessKeyID, accessKeySecret string, timeout time.Duration) (*AliyunSMS, error) {
	config := &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		RegionId:        tea.String(regionID),
		Endpoint:        tea.String(endpoint),
	}
	if timeout > 0 {
		config.ConnectTimeout = tea.Int(int(timeout.Milliseconds()))
		config.ReadTimeout = tea.Int(int(timeout.Milliseconds()))
	}
	c, err := dysmsapi.NewClient(config)
	if err != nil {
		return nil, err
	}
	return &AliyunSMS{client: c, templateCode: templateCode}, nil
}

// Send ServiceID 作为短信签名
func (a *AliyunSMS) Send(_ context.Context, req SendReq) (SendResp, error) {
	templateParam, err := json.Marshal(map[string]string{aliyunContentParam: req.Body})
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	request := &dysmsapi.SendSmsRequest{
		// 号码不带 +
		PhoneNumbers:  tea.String(strings.TrimPrefix(req.To, "+")),
		SignName:      tea.String(req.ServiceID),
		TemplateCode:  tea.String(a.templateCode),
		TemplateParam: tea.String(string(templateParam)),
	}

	response, err := a.client.SendSms(request)
	if err != nil {
		var sdkErr *tea.SDKError
		if errors.As(err, &sdkErr) && sdkErr.StatusCode != nil &&
			*sdkErr.StatusCode >= http.StatusBadRequest && *sdkErr.StatusCode < http.StatusInternalServerError {
			return SendResp{}, &errs.CarrierRejectedError{
				Provider: domain.CarrierProviderAliyun,
				Code:     tea.StringValue(sdkErr.Code),
				Message:  tea.StringValue(sdkErr.Message),
			}
		}
		return SendResp{}, fmt.Errorf("%w: aliyun %w", errs.ErrTransport, err)
	}
	if response == nil || response.Body == nil {
		return SendResp{}, fmt.Errorf("%w: aliyun 响应异常", errs.ErrTransport)
	}
	body := response.Body
	if tea.StringValue(body.Code) != OK {
		return SendResp{}, &errs.CarrierRejectedError{
			Provider: domain.CarrierProviderAliyun,
			Code:     tea.StringValue(body.Code),
			Message:  tea.StringValue(body.Message),
		}
	}
	return SendResp{
		MessageID: tea.StringValue(body.BizId),
		From:      req.ServiceID,
		To:        req.To,
		Direction: DirectionOutboundAPI,
		Status:    StatusAccepted,
		CreatedAt: time.Now(),
	}, nil
}
