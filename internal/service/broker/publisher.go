package broker

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	amqp "github.com/rabbitmq/amqp091-go"
)

// payload 租户客户端约定的消息格式
type payload struct {
	Text   string `json:"text"`
	Number string `json:"number"`
}

func encode(msg domain.BrokerMessage) (amqp.Publishing, error) {
	body, err := json.Marshal(payload{Text: msg.Text, Number: msg.Number})
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}, nil
}

type dialFunc func(vhost string) (*amqp.Connection, error)

func newDialer(cfg Config) dialFunc {
	cfg = cfg.WithDefaults()
	scheme := "amqp"
	if cfg.SSL {
		scheme = "amqps"
	}
	u := url.URL{
		Scheme: scheme,
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.AMQPPort),
	}
	addr := u.String()
	return func(vhost string) (*amqp.Connection, error) {
		c := amqp.Config{Vhost: vhost, Dial: amqp.DefaultDial(cfg.Timeout)}
		if cfg.SSL {
			c.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		return amqp.DialConfig(addr, c)
	}
}

type publisher interface {
	publish(ctx context.Context, msg domain.BrokerMessage) error
	close() error
}

// perPublishPublisher 每次投递一条连接，投递完关闭
type perPublishPublisher struct {
	dial dialFunc
}

func (p *perPublishPublisher) publish(ctx context.Context, msg domain.BrokerMessage) error {
	conn, err := p.dial(msg.VirtualHost)
	if err != nil {
		return fmt.Errorf("%w: 连接虚拟主机 %s 失败 %w", errs.ErrTransport, msg.VirtualHost, err)
	}
	defer conn.Close()
	return publishOn(ctx, conn, msg)
}

func (p *perPublishPublisher) close() error {
	return nil
}

// pooledPublisher 每个虚拟主机一条长连接，断开后下次投递重连
type pooledPublisher struct {
	dial  dialFunc
	mu    sync.Mutex
	conns map[string]*amqp.Connection
}

func (p *pooledPublisher) publish(ctx context.Context, msg domain.BrokerMessage) error {
	conn, err := p.conn(msg.VirtualHost)
	if err != nil {
		return fmt.Errorf("%w: 连接虚拟主机 %s 失败 %w", errs.ErrTransport, msg.VirtualHost, err)
	}
	return publishOn(ctx, conn, msg)
}

func (p *pooledPublisher) conn(vhost string) (*amqp.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.conns[vhost]; ok && !c.IsClosed() {
		return c, nil
	}
	c, err := p.dial(vhost)
	if err != nil {
		return nil, err
	}
	p.conns[vhost] = c
	return c, nil
}

func (p *pooledPublisher) close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var first error
	for vhost, c := range p.conns {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
		delete(p.conns, vhost)
	}
	return first
}

func publishOn(ctx context.Context, conn *amqp.Connection, msg domain.BrokerMessage) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: 打开 channel 失败 %w", errs.ErrTransport, err)
	}
	defer ch.Close()

	pub, err := encode(msg)
	if err != nil {
		return err
	}
	if err = ch.PublishWithContext(ctx, msg.Exchange, msg.RoutingKey, false, false, pub); err != nil {
		return fmt.Errorf("%w: 投递到 %s/%s 失败 %w", errs.ErrTransport, msg.Exchange, msg.RoutingKey, err)
	}
	return nil
}
