//go:build unit

package workerpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	_, err := New(Config{Size: 0})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestPool_SubmitExhausted(t *testing.T) {
	t.Parallel()
	p, err := New(Config{Size: 1})
	require.NoError(t, err)

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(func(context.Context) {
		close(started)
		<-release
	}))
	<-started

	err = p.Submit(func(context.Context) {})
	assert.ErrorIs(t, err, errs.ErrWorkerPoolExhausted)

	close(release)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_ShutdownWaitsForRunningTasks(t *testing.T) {
	t.Parallel()
	p, err := New(Config{Size: 4})
	require.NoError(t, err)

	var finished atomic.Int32
	for i := 0; i < 4; i++ {
		require.NoError(t, p.Submit(func(context.Context) {
			time.Sleep(20 * time.Millisecond)
			finished.Add(1)
		}))
	}
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(4), finished.Load())

	// 关闭之后不再接收任务
	assert.ErrorIs(t, p.Submit(func(context.Context) {}), errs.ErrWorkerPoolExhausted)
}

func TestPool_ShutdownDeadlineCancelsTasks(t *testing.T) {
	t.Parallel()
	p, err := New(Config{Size: 1})
	require.NoError(t, err)

	cancelled := make(chan struct{})
	require.NoError(t, p.Submit(func(ctx context.Context) {
		<-ctx.Done()
		close(cancelled)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Shutdown(ctx), context.DeadlineExceeded)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("任务没有收到取消信号")
	}
}

func TestPool_RecoverPanic(t *testing.T) {
	t.Parallel()
	p, err := New(Config{Size: 1})
	require.NoError(t, err)

	require.NoError(t, p.Submit(func(context.Context) { panic("boom") }))
	require.NoError(t, p.Shutdown(context.Background()))
	// 槽位已经释放
	assert.True(t, p.sem.TryAcquire(1))
}
