// Package service holds the business workflows that sit between the
// HTTP handlers and the repositories: order placement and event
// publishing.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/concert-ticket-sales/internal/queue"
)

// EventPublisher publishes domain events.  The purchase flow treats
// publish failures as non-fatal: the order is already committed.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, ev queue.OrderPlacedEvent) error
}

// AMQPPublisher publishes events to RabbitMQ, declaring the durable
// queue on every publish (idempotent) so ordering of process startup
// does not matter.
type AMQPPublisher struct {
	URL string
	Log *logrus.Logger
}

// NewAMQPPublisher builds a publisher for the broker URL from the
// environment.
func NewAMQPPublisher(log *logrus.Logger) *AMQPPublisher {
	return &AMQPPublisher{URL: queue.BrokerURL(), Log: log}
}

// PublishOrderPlaced sends an OrderPlacedEvent to the order.placed
// queue.  Messages are marked persistent so they survive broker
// restarts.  Errors are logged and returned; callers may ignore them.
func (p *AMQPPublisher) PublishOrderPlaced(ctx context.Context, ev queue.OrderPlacedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Log.WithError(err).Warn("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.WithError(err).Warn("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue.OrderQueueName, true, false, false, false, nil); err != nil {
		p.Log.WithError(err).Warn("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.Log.WithError(err).Warn("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.OrderQueueName, false, false, pub); err != nil {
		p.Log.WithError(err).Warn("rabbitmq: publish failed")
		return err
	}
	return nil
}
