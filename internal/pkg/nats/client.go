package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const publishTimeout = 5 * time.Second

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// NewClient connects to NATS and enables JetStream
func NewClient(url string, name string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{conn: conn, js: js}, nil
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// IsConnected reports the connection state
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Ping flushes the connection, used by health checks
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsConnected() {
		return fmt.Errorf("nats connection is %s", c.conn.Status())
	}
	return c.conn.FlushWithContext(ctx)
}

// Publish stores a message on the stream bound to subject
func (c *Client) Publish(subject string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if _, err := c.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// EnsureStream creates the stream or updates it to the given configuration
func (c *Client) EnsureStream(ctx context.Context, config StreamConfig) error {
	if _, err := c.js.CreateOrUpdateStream(ctx, config.JetStream()); err != nil {
		return fmt.Errorf("failed to create stream %s: %w", config.Name, err)
	}
	return nil
}

// MessageHandler processes one JetStream message. A nil return acks it, an error naks it.
type MessageHandler func(msg jetstream.Msg) error

// ConsumeMessages creates the durable consumer if needed and starts pushing messages to handler
func (c *Client) ConsumeMessages(ctx context.Context, config ConsumerConfig, handler MessageHandler) (jetstream.ConsumeContext, error) {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, config.StreamName, config.JetStream())
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s: %w", config.ConsumerName, err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to consume from %s: %w", config.ConsumerName, err)
	}
	return cc, nil
}

// Close drains pending messages and closes the connection
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Drain()
	}
}
