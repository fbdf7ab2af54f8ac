package main

import (
	"context"
	"strings"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/service/broker"
	"gitee.com/flycash/publish-gateway/internal/service/carrier"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

// Tenant 需要开通的租户和项目
type Tenant struct {
	// 虚拟主机和 broker 用户都使用账号标识
	AccountSID       string
	Password         string
	ProjectReference string
	// 需要预先创建队列的 MCC+MNC 组合码，可以为空
	OperatorCodes []string
}

type provisioner struct {
	api    *broker.ManagementAPI
	table  *carrier.Table
	logger *elog.Component
}

func newProvisioner(api *broker.ManagementAPI, table *carrier.Table) *provisioner {
	return &provisioner{
		api:    api,
		table:  table,
		logger: elog.DefaultLogger,
	}
}

// Provision 前面的步骤失败就直接返回，队列之间互不影响
func (p *provisioner) Provision(ctx context.Context, t Tenant) ([]string, error) {
	if err := p.api.CreateVirtualHost(ctx, t.AccountSID); err != nil {
		return nil, err
	}
	if err := p.api.CreateUser(ctx, t.AccountSID, t.Password); err != nil {
		return nil, err
	}
	if err := p.api.SetPermissions(ctx, t.AccountSID, t.AccountSID); err != nil {
		return nil, err
	}
	if err := p.api.DeclareTopicExchange(ctx, t.AccountSID, t.ProjectReference); err != nil {
		return nil, err
	}

	var result *multierror.Error
	queues := make([]string, 0, len(t.OperatorCodes))
	for _, code := range t.OperatorCodes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		dest, err := p.table.LookupCode(code)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		queue := domain.RoutingIdentifier(t.ProjectReference, dest)
		err = p.api.DeclareBoundQueue(ctx, t.AccountSID, t.ProjectReference, queue, domain.RoutingKey(queue))
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		p.logger.Info("队列已创建", elog.String("queue", queue), elog.String("code", code))
		queues = append(queues, queue)
	}
	return queues, result.ErrorOrNil()
}
