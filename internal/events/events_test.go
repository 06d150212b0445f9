package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/gearshop/internal/models"
)

type recordingChannel struct {
	key  string
	msgs []amqp.Publishing
	err  error
}

func (r *recordingChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	r.key = key
	r.msgs = append(r.msgs, msg)
	return r.err
}

func (r *recordingChannel) Close() error { return nil }

func TestPublishPurchase(t *testing.T) {
	ch := &recordingChannel{}
	p := &AMQPPublisher{ch: ch, queue: "purchases"}
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	ev := NewPurchaseEvent(&models.Purchase{ID: 11, UserID: 7, Email: "buyer@example.com"}, 3, at)
	require.NoError(t, p.PublishPurchase(context.Background(), ev))

	require.Len(t, ch.msgs, 1)
	assert.Equal(t, "purchases", ch.key)
	assert.Equal(t, "application/json", ch.msgs[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.msgs[0].DeliveryMode)

	var got PurchaseEvent
	require.NoError(t, json.Unmarshal(ch.msgs[0].Body, &got))
	assert.Equal(t, ev, got)
}

func TestPublishPurchaseError(t *testing.T) {
	p := &AMQPPublisher{ch: &recordingChannel{err: errors.New("channel closed")}, queue: "purchases"}

	err := p.PublishPurchase(context.Background(), PurchaseEvent{PurchaseID: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purchase 4")
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.PublishPurchase(context.Background(), PurchaseEvent{}))
	assert.NoError(t, p.Close())
}
