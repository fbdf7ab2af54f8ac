package broker

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/go-resty/resty/v2"
)

// ManagementAPI RabbitMQ 管理接口
type ManagementAPI struct {
	client *resty.Client
}

func NewManagementAPI(cfg Config) *ManagementAPI {
	cfg = cfg.WithDefaults()
	c := resty.New().
		SetBaseURL(cfg.managementBaseURL()).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.SSL {
		c.SetTLSClientConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	return &ManagementAPI{client: c}
}

func (m *ManagementAPI) QueueExists(ctx context.Context, queue, virtualHost string) (bool, error) {
	resp, err := m.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"vhost": virtualHost, "queue": queue}).
		Get("/api/queues/{vhost}/{queue}")
	if err != nil {
		return false, fmt.Errorf("%w: 查询队列 %s 失败 %w", errs.ErrTransport, queue, err)
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return false, nil
	case resp.IsSuccess():
		return true, nil
	default:
		return false, fmt.Errorf("%w: 查询队列 %s 返回 %d %s", errs.ErrTransport, queue, resp.StatusCode(), resp.String())
	}
}

func (m *ManagementAPI) CreateVirtualHost(ctx context.Context, virtualHost string) error {
	return m.put(ctx, "/api/vhosts/{vhost}", map[string]string{"vhost": virtualHost}, nil)
}

// CreateUser 租户用户只有 management 标签
func (m *ManagementAPI) CreateUser(ctx context.Context, username, password string) error {
	return m.put(ctx, "/api/users/{user}", map[string]string{"user": username}, map[string]string{
		"password": password,
		"tags":     "management",
	})
}

func (m *ManagementAPI) SetPermissions(ctx context.Context, virtualHost, username string) error {
	return m.put(ctx, "/api/permissions/{vhost}/{user}",
		map[string]string{"vhost": virtualHost, "user": username},
		map[string]string{"configure": ".*", "write": ".*", "read": ".*"})
}

func (m *ManagementAPI) DeclareTopicExchange(ctx context.Context, virtualHost, exchange string) error {
	return m.put(ctx, "/api/exchanges/{vhost}/{exchange}",
		map[string]string{"vhost": virtualHost, "exchange": exchange},
		map[string]any{"type": "topic", "durable": true})
}

// DeclareBoundQueue 创建持久化队列并以 routingKey 绑定到交换机
func (m *ManagementAPI) DeclareBoundQueue(ctx context.Context, virtualHost, exchange, queue, routingKey string) error {
	err := m.put(ctx, "/api/queues/{vhost}/{queue}",
		map[string]string{"vhost": virtualHost, "queue": queue},
		map[string]any{"durable": true})
	if err != nil {
		return err
	}
	resp, err := m.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"vhost": virtualHost, "exchange": exchange, "queue": queue}).
		SetBody(map[string]string{"routing_key": routingKey}).
		Post("/api/bindings/{vhost}/e/{exchange}/q/{queue}")
	return m.check(resp, err, "bind "+queue)
}

func (m *ManagementAPI) DeleteQueue(ctx context.Context, virtualHost, queue string) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"vhost": virtualHost, "queue": queue}).
		Delete("/api/queues/{vhost}/{queue}")
	if err == nil && resp.StatusCode() == http.StatusNotFound {
		return nil
	}
	return m.check(resp, err, "delete "+queue)
}

func (m *ManagementAPI) put(ctx context.Context, path string, params map[string]string, body any) error {
	req := m.client.R().SetContext(ctx).SetPathParams(params)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Put(path)
	return m.check(resp, err, path)
}

func (m *ManagementAPI) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%w: %s %w", errs.ErrTransport, op, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s 返回 %d %s", errs.ErrTransport, op, resp.StatusCode(), resp.String())
	}
	return nil
}
