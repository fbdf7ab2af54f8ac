package main

import (
	"context"
	"strings"
	"time"

	"gitee.com/flycash/publish-gateway/internal/ioc"
	"gitee.com/flycash/publish-gateway/internal/service/broker"
	"gitee.com/flycash/publish-gateway/internal/service/carrier"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/eflag"
	"github.com/gotomicro/ego/core/elog"
)

func main() {
	eflag.Register(
		&eflag.StringFlag{Name: "account", Usage: "--account 账号标识，同时作为虚拟主机和用户名"},
		&eflag.StringFlag{Name: "password", Usage: "--password broker 用户密码"},
		&eflag.StringFlag{Name: "project", Usage: "--project 项目引用，同时作为交换机名"},
		&eflag.StringFlag{Name: "codes", Usage: "--codes 逗号分隔的 MCC+MNC 组合码，例如 62401,62402"},
	)
	_ = ego.New()

	t := Tenant{
		AccountSID:       eflag.String("account"),
		Password:         eflag.String("password"),
		ProjectReference: eflag.String("project"),
	}
	if codes := eflag.String("codes"); codes != "" {
		t.OperatorCodes = strings.Split(codes, ",")
	}
	if t.AccountSID == "" || t.Password == "" || t.ProjectReference == "" {
		elog.Panic("缺少参数", elog.String("need", "account, password, project"))
	}

	cfg := ioc.InitBrokerConfig()
	const timeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	queues, err := newProvisioner(broker.NewManagementAPI(cfg), carrier.DefaultTable()).Provision(ctx, t)
	if err != nil {
		elog.Panic("开通失败", elog.FieldErr(err), elog.Any("queues", queues))
	}
	elog.Info("开通完成", elog.String("account", t.AccountSID), elog.Any("queues", queues))
}
