package client

import (
	"context"
	"time"
)

const (
	DirectionOutboundAPI = "outbound-api"
)

//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=clientmocks Client
type Client interface {
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type SendReq struct {
	To   string
	Body string
	// twilio 为 messaging service sid，阿里云为发送方号码或 sender id
	ServiceID string
}

type SendResp struct {
	MessageID    string
	From         string
	To           string
	Direction    string
	Status       string // 对方原始状态
	ErrorMessage string
	CreatedAt    time.Time
}
