// Package workerpool 有界的后台任务池，批量发送在这里异步执行
package workerpool

import (
	"context"
	"fmt"
	"sync"

	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/semaphore"
)

// Task 后台任务，ctx 在 Shutdown 超时之后被取消
type Task func(ctx context.Context)

type Config struct {
	// 同时运行的批次上限
	Size int64 `json:"size"`
}

// Pool 满了直接拒绝，不排队
type Pool struct {
	sem    *semaphore.Weighted
	size   int64
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	closed bool

	logger *elog.Component
}

func New(cfg Config) (*Pool, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: Size = %d", errs.ErrInvalidParameter, cfg.Size)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		sem:    semaphore.NewWeighted(cfg.Size),
		size:   cfg.Size,
		ctx:    ctx,
		cancel: cancel,
		logger: elog.DefaultLogger,
	}, nil
}

// Submit 立即返回，任务在独立的 goroutine 中执行
func (p *Pool) Submit(task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return fmt.Errorf("%w: 已关闭", errs.ErrWorkerPoolExhausted)
	}
	if !p.sem.TryAcquire(1) {
		return fmt.Errorf("%w: 并发上限 %d", errs.ErrWorkerPoolExhausted, p.size)
	}
	p.wg.Add(1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("后台任务 panic", elog.Any("panic", r))
			}
			p.sem.Release(1)
			p.wg.Done()
		}()
		task(p.ctx)
	}()
	return nil
}

// Shutdown 停止接收新任务并等待正在运行的任务。
// ctx 到期后取消任务的 ctx 并返回，未发送的条目丢失
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		p.logger.Warn("后台任务未在期限内完成，剩余条目将丢失", elog.FieldErr(ctx.Err()))
		return ctx.Err()
	}
}
