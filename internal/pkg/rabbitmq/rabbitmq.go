package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Client publishes booking events to a durable topic exchange and can consume them back
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	mu       sync.Mutex
}

// NewClient dials RabbitMQ and declares the topic exchange
func NewClient(url, exchange string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Client{conn: conn, channel: channel, exchange: exchange}, nil
}

// Publish sends data to the exchange with subject as the routing key
func (c *Client) Publish(subject string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	// amqp channels are not safe for concurrent publishing
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.channel.PublishWithContext(ctx,
		c.exchange, // exchange
		subject,    // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         data,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// MessageHandler processes one delivery. An error requeues it.
type MessageHandler func(subject string, body []byte) error

// Consume declares a durable queue bound to bindingKey and dispatches deliveries to handler
// until ctx is cancelled
func (c *Client) Consume(ctx context.Context, queue, bindingKey string, handler MessageHandler) error {
	if _, err := c.channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	if err := c.channel.QueueBind(queue, bindingKey, c.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", queue, err)
	}

	msgs, err := c.channel.Consume(
		queue, // queue
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("RabbitMQ delivery channel closed", logger.String("queue", queue))
					return
				}
				if err := handler(msg.RoutingKey, msg.Body); err != nil {
					logger.Error("Error processing RabbitMQ message",
						logger.String("routing_key", msg.RoutingKey),
						logger.ErrorField(err))
					_ = msg.Nack(false, !msg.Redelivered)
					continue
				}
				_ = msg.Ack(false)
			}
		}
	}()

	return nil
}

// IsConnected reports whether the connection is open
func (c *Client) IsConnected() bool {
	return c.conn != nil && !c.conn.IsClosed()
}

// Close closes the channel and the connection
func (c *Client) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
