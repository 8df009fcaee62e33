package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "party.events"

	// how long to wait for a Return or Confirm after publishing
	defaultOutcomeWait = 150 * time.Millisecond
)

var (
	ErrNotReady = errors.New("publisher channel not ready")
	ErrNack     = errors.New("publish nack")
	ErrNoRoute  = errors.New("no queue bound for routing key")
)

// Publisher sends persistent JSON messages to a topic exchange. Publishes
// are mandatory and confirmed. A channel closed by the broker is reopened
// on the next publish.
type Publisher struct {
	url         string
	exchange    string
	outcomeWait time.Duration

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	confirms <-chan amqp.Confirmation
	returns  <-chan amqp.Return
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	p := &Publisher{url: url, exchange: exchange, outcomeWait: defaultOutcomeWait}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.dial(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) Exchange() string { return p.exchange }

// dial opens a fresh connection and confirm-mode channel and declares the
// exchange. Callers hold p.mu.
func (p *Publisher) dial() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := setupChannel(conn, p.exchange)
	if err != nil {
		_ = conn.Close()
		return err
	}

	p.conn, p.ch = conn, ch
	p.confirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	p.returns = ch.NotifyReturn(make(chan amqp.Return, 1))
	return nil
}

func setupChannel(conn *amqp.Connection, exchange string) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}
	return ch, nil
}

// ready returns an open channel, redialing once if the broker closed the
// previous one. Callers hold p.mu.
func (p *Publisher) ready() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.url == "" {
		return nil, ErrNotReady
	}
	p.release()
	if err := p.dial(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotReady, err)
	}
	return p.ch, nil
}

func (p *Publisher) release() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.release()
	return nil
}

// PublishEvent publishes body under routingKey. messageID must be stable
// for a given domain event so consumers can deduplicate.
func (p *Publisher) PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error {
	if strings.TrimSpace(routingKey) == "" {
		return errors.New("missing routingKey")
	}
	if strings.TrimSpace(messageID) == "" {
		return errors.New("missing messageID")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.ready()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		MessageId:    messageID,
		Type:         routingKey,
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, routingKey, true, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return p.awaitOutcome(ctx)
}

// awaitOutcome reports a Return or a nack. If neither arrives within the
// wait window the message counts as sent.
func (p *Publisher) awaitOutcome(ctx context.Context) error {
	wait := p.outcomeWait
	if wait <= 0 {
		wait = defaultOutcomeWait
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case ret := <-p.returns:
		return fmt.Errorf("%w: %s", ErrNoRoute, ret.RoutingKey)
	case conf := <-p.confirms:
		if !conf.Ack {
			return ErrNack
		}
		// the broker sends basic.return before the ack of an unroutable message
		select {
		case ret := <-p.returns:
			return fmt.Errorf("%w: %s", ErrNoRoute, ret.RoutingKey)
		default:
			return nil
		}
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
