package publish

import "gitee.com/flycash/publish-gateway/internal/domain"

type PublishReq struct {
	To   string `json:"to"`
	Body string `json:"body"`
	Sid  string `json:"sid"`
}

type UpdateStatusReq struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// DeliveryLog 投递日志的对外表示
type DeliveryLog struct {
	Sid         string `json:"sid"`
	ClientSid   string `json:"client_sid"`
	RemoteSid   string `json:"remote_sid"`
	Service     string `json:"service"`
	ServiceName string `json:"service_name"`
	ProjectRef  string `json:"project_ref"`
	Direction   string `json:"direction"`
	To          string `json:"to"`
	From        string `json:"from"`
	Channel     string `json:"channel"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	Body        string `json:"body"`
	CreatedAt   int64  `json:"created_at"`
}

func newDeliveryLog(log domain.DeliveryLog) DeliveryLog {
	return DeliveryLog{
		Sid:         log.ID,
		ClientSid:   log.ClientSID,
		RemoteSid:   log.RemoteMessageID,
		Service:     string(log.ServiceKind),
		ServiceName: log.ServiceName,
		ProjectRef:  log.ProjectReference,
		Direction:   string(log.Direction),
		To:          log.Recipient,
		From:        log.Sender,
		Channel:     string(log.Channel),
		Status:      string(log.Status),
		Reason:      log.FailureReason,
		Body:        log.Body,
		CreatedAt:   log.CreatedAt,
	}
}
