// Package rabbitmq publishes and consumes JSON events over RabbitMQ queues.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"

	amqp "github.com/streadway/amqp"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex // amqp.Channel is not safe for concurrent publishing
	log     *logger.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
	// Queues are declared durable when the client connects.
	Queues []string
}

// NewClient connects to RabbitMQ, opens a channel and declares the configured queues.
func NewClient(cfg Config, log *logger.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range cfg.Queues {
		if err := declare(ch, queue); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	log.Info("rabbitmq client connected", "queues", cfg.Queues)

	return &Client{
		conn:    conn,
		channel: ch,
		log:     log.With("component", "rabbitmq"),
	}, nil
}

func declare(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", queue, err)
	}
	return nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// encode wraps an event in a persistent JSON message.
func encode(event interface{}) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event to JSON: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}, nil
}

// Publish sends event, marshaled to JSON, to queue through the default exchange.
func (c *Client) Publish(queue string, event interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	msg, err := encode(event)
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = c.channel.Publish(
		"",    // exchange: default exchange
		queue, // routing key: the queue name
		false, // mandatory
		false, // immediate
		msg)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", queue, err)
	}

	c.log.Debug("event sent", "queue", queue, "bytes", len(msg.Body))
	return nil
}

// Handler processes the body of one message. Returning an error rejects the message.
type Handler func(body []byte) error

// Consume delivers the messages of queue to handler until ctx is done or the channel closes.
func (c *Client) Consume(ctx context.Context, queue string, handler Handler) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}
	if err := declare(c.channel, queue); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue, // queue
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.log.Info("waiting for events", "queue", queue)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel of %s closed", queue)
			}
			c.dispatch(msg, handler)
		}
	}
}

// dispatch acks handled messages. A failed message is requeued once, then dropped.
func (c *Client) dispatch(msg amqp.Delivery, handler Handler) {
	if err := handler(msg.Body); err != nil {
		requeue := !msg.Redelivered
		c.log.Warn("error processing message", "delivery_tag", msg.DeliveryTag, "requeue", requeue, "error", err)
		if nackErr := msg.Nack(false, requeue); nackErr != nil {
			c.log.Error("error nacking message", "delivery_tag", msg.DeliveryTag, "error", nackErr)
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		c.log.Error("error acking message", "delivery_tag", msg.DeliveryTag, "error", ackErr)
	}
}
