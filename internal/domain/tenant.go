package domain

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
)

const (
	CarrierProviderTwilio = "twilio"
	CarrierProviderAliyun = "aliyun"
)

// ExternalCarrierCredentials 租户自己提供的第三方短信接口凭证
type ExternalCarrierCredentials struct {
	Provider           string // 为空时视为 twilio
	AccountID          string
	AuthToken          string
	MessagingServiceID string
}

// Complete 三个字段都存在时才认为外部通道可用
func (c ExternalCarrierCredentials) Complete() bool {
	return c.AccountID != "" && c.AuthToken != "" && c.MessagingServiceID != ""
}

func (c ExternalCarrierCredentials) ProviderName() string {
	if c.Provider == "" {
		return CarrierProviderTwilio
	}
	return strings.ToLower(c.Provider)
}

// TenantChannelCredentials 租户的通道凭证，流水线只读
type TenantChannelCredentials struct {
	VirtualHost string // 消息队列虚拟主机，即租户的 account sid
	Carrier     ExternalCarrierCredentials
}

// Tenant 已经通过鉴权的租户
type Tenant struct {
	UserID      int64
	AccountSID  string
	Credentials TenantChannelCredentials
}

// Project 租户名下的发布项目
type Project struct {
	ID          int64
	Reference   string
	OwnerUserID int64
	Name        string
	Description string
}

// NewProjectReference PJ + 项目ID + 8位随机十六进制
func NewProjectReference(projectID int64) (string, error) {
	u, err := uuid.NewV1()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PJ%d%s", projectID, strings.ReplaceAll(u.String(), "-", "")[:8]), nil
}
