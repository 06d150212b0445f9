// Package events announces completed purchases to other services.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matthieukhl/gearshop/internal/models"
)

// PurchaseEvent is the JSON body published for every checkout.
type PurchaseEvent struct {
	PurchaseID   int64     `json:"purchase_id"`
	UserID       int64     `json:"user_id"`
	Email        string    `json:"email"`
	ItemsCleared int64     `json:"items_cleared"`
	CompletedAt  time.Time `json:"completed_at"`
}

func NewPurchaseEvent(p *models.Purchase, cleared int64, at time.Time) PurchaseEvent {
	return PurchaseEvent{
		PurchaseID:   p.ID,
		UserID:       p.UserID,
		Email:        p.Email,
		ItemsCleared: cleared,
		CompletedAt:  at.UTC(),
	}
}

type Publisher interface {
	PublishPurchase(ctx context.Context, ev PurchaseEvent) error
	Close() error
}

// Nop discards events. Used when no broker is configured.
type Nop struct{}

func (Nop) PublishPurchase(context.Context, PurchaseEvent) error { return nil }
func (Nop) Close() error                                          { return nil }

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends events to a durable RabbitMQ queue through the default
// exchange.
type AMQPPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    channel
	queue string
}

// DialAMQP connects to url and declares queue.
func DialAMQP(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, queue: q.Name}, nil
}

func (p *AMQPPublisher) PublishPurchase(ctx context.Context, ev PurchaseEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         "purchase.completed",
		Timestamp:    ev.CompletedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish purchase %d: %w", ev.PurchaseID, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	chErr := p.ch.Close()
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return err
		}
	}
	return chErr
}
