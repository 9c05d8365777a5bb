package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Broker sends an encoded event to an external exchange.
type Broker interface {
	Send(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

type AMQPBroker struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func NewAMQPBroker(url, exchange string) (*AMQPBroker, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPBroker{conn: conn, channel: channel, exchange: exchange}, nil
}

func (b *AMQPBroker) Send(ctx context.Context, routingKey string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := b.channel.PublishWithContext(
		ctx,
		b.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (b *AMQPBroker) Close() error {
	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}

type envelope struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// RelayTo forwards every event on the bus to broker, keyed by event type.
func RelayTo(bus *EventBus, broker Broker, logger *slog.Logger) {
	bus.Subscribe(AllEvents, func(ctx context.Context, event Event) error {
		body, err := json.Marshal(envelope{
			ID:         event.EventID(),
			Type:       event.EventType(),
			OccurredAt: event.OccurredAt(),
			Data:       event.Payload(),
		})
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}

		if err := broker.Send(ctx, event.EventType(), body); err != nil {
			return err
		}

		logger.Debug("event relayed",
			"event_type", event.EventType(),
			"event_id", event.EventID())
		return nil
	})
}

// LogEvents records every domain event at info level.
func LogEvents(bus *EventBus, logger *slog.Logger) {
	bus.Subscribe(AllEvents, func(_ context.Context, event Event) error {
		logger.Info("domain event",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"payload", event.Payload())
		return nil
	})
}
