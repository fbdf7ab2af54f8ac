package main

import (
	"context"
	"time"

	"gitee.com/flycash/publish-gateway/cmd/gateway/ioc"
	appioc "gitee.com/flycash/publish-gateway/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

const shutdownTimeout = 30 * time.Second

func main() {
	var app *appioc.App
	// ego.New 负责加载配置，必须先于 InitApp
	egoApp := ego.New(
		ego.WithBeforeStopClean(closeApp(&app, shutdownTimeout)),
	)
	app = ioc.InitApp()
	if err := egoApp.Serve(app.HTTPServer).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}

// closeApp 停止前按顺序关闭后台任务和连接，app 可能还没有初始化
func closeApp(app **appioc.App, timeout time.Duration) func() error {
	return func() error {
		if *app == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return (*app).Close(ctx)
	}
}
