package domain

const (
	BatchMessageProcessing = "processing"
	BatchMessageRejected   = "rejected"
	BatchWarningNoPayload  = "no valid payload"
)

// BatchItemResult 批量发布时每一项的即时结果
type BatchItemResult struct {
	// ID 投递日志 ID，可用于查询，被拒绝的条目为空
	ID        string   `json:"id"`
	// ClientSID 客户端提供的 sid，原样返回
	ClientSID string   `json:"sid"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors"`
	Warnings  []string `json:"warnings"`
}

// BatchAck 批量发布的应答，顺序与输入一致
type BatchAck struct {
	Items    []BatchItemResult `json:"items"`
	Accepted int               `json:"accepted"`
	Warnings []string          `json:"warnings"`
}
