package batch

import (
	"context"
	"time"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/pkg/workerpool"
	"gitee.com/flycash/publish-gateway/internal/service/publish"
	"github.com/gotomicro/ego/core/elog"
)

// Submitter 后台执行批次的任务池
type Submitter interface {
	Submit(task workerpool.Task) error
}

// Ingestor 立即应答，发送在任务池中按输入顺序逐条进行
type Ingestor struct {
	svc      publish.Service
	pool     Submitter
	newLogID func() (string, error)
	// 单条发送的超时时间，0 表示不限制
	itemTimeout time.Duration
	logger      *elog.Component
}

func NewIngestor(svc publish.Service, pool Submitter) *Ingestor {
	return &Ingestor{
		svc:         svc,
		pool:        pool,
		newLogID:    publish.NewLogID,
		itemTimeout: 30 * time.Second,
		logger:      elog.DefaultLogger,
	}
}

// Submit cmd 提供租户和项目上下文，Request 字段会被每一项覆盖。
// 任务池已满时返回 errs.ErrWorkerPoolExhausted，此时没有任何条目被发送
func (i *Ingestor) Submit(_ context.Context, cmd domain.PublishCommand, items []Item) (domain.BatchAck, error) {
	ack := domain.BatchAck{Items: make([]domain.BatchItemResult, 0, len(items))}
	requests := make([]domain.SendRequest, 0, len(items))
	logIDs := make([]string, 0, len(items))
	for _, item := range items {
		result := domain.BatchItemResult{
			ClientSID: item.Request.ClientSuppliedID,
			Errors:    []string{},
			Warnings:  []string{},
		}
		if !item.Valid() {
			result.Message = domain.BatchMessageRejected
			result.Errors = item.Errors()
			ack.Items = append(ack.Items, result)
			continue
		}
		// 日志 ID 总是服务端分配，客户端 sid 重复也不会丢日志
		logID, err := i.newLogID()
		if err != nil {
			return domain.BatchAck{}, err
		}
		result.ID = logID
		result.Message = domain.BatchMessageProcessing
		ack.Items = append(ack.Items, result)
		requests = append(requests, item.Request)
		logIDs = append(logIDs, logID)
	}

	if len(requests) == 0 {
		ack.Warnings = []string{domain.BatchWarningNoPayload}
		return ack, nil
	}
	if err := i.pool.Submit(func(ctx context.Context) {
		i.run(ctx, cmd, requests, logIDs)
	}); err != nil {
		return domain.BatchAck{}, err
	}
	ack.Accepted = len(requests)
	ack.Warnings = []string{}
	return ack, nil
}

// run 结果只记录在投递日志中
func (i *Ingestor) run(ctx context.Context, cmd domain.PublishCommand, requests []domain.SendRequest, logIDs []string) {
	for idx, req := range requests {
		if ctx.Err() != nil {
			i.logger.Warn("批量发送被中止，剩余条目未发送",
				elog.String("project", cmd.ProjectReference),
				elog.Int("remaining", len(requests)-idx),
				elog.FieldErr(ctx.Err()))
			return
		}
		c := cmd
		c.Request = req
		c.LogID = logIDs[idx]
		i.publishOne(ctx, c)
	}
}

func (i *Ingestor) publishOne(ctx context.Context, cmd domain.PublishCommand) {
	if i.itemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.itemTimeout)
		defer cancel()
	}
	log, err := i.svc.Publish(ctx, cmd)
	if err != nil {
		i.logger.Warn("批量发送单条失败",
			elog.String("project", cmd.ProjectReference),
			elog.String("logId", cmd.LogID),
			elog.String("sid", cmd.Request.ClientSuppliedID),
			elog.String("status", string(log.Status)),
			elog.FieldErr(err))
	}
}
