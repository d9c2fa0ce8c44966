package nsq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// MessageHandler processes a decoded envelope. Returning an error requeues the message.
type MessageHandler func(subject string, payload []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// ConsumerConfig holds the connection settings for a consumer
type ConsumerConfig struct {
	Topic          string
	Channel        string
	NSQDAddress    string
	LookupdAddress string
	MaxInFlight    int
}

// NewConsumer creates a consumer for a topic/channel and connects it
func NewConsumer(cfg ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	if cfg.MaxInFlight > 0 {
		config.MaxInFlight = cfg.MaxInFlight
	}
	config.MaxAttempts = 5
	config.DefaultRequeueDelay = 2 * time.Second

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(nil, nsq.LogLevelError)

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		var env Envelope
		if err := json.Unmarshal(message.Body, &env); err != nil {
			// malformed bodies are dropped, requeueing cannot fix them
			logger.Warn("Dropping malformed NSQ message",
				logger.String("topic", cfg.Topic),
				logger.ErrorField(err))
			return nil
		}

		if err := handler(env.Subject, env.Payload); err != nil {
			logger.Error("Error processing NSQ message",
				logger.String("subject", env.Subject),
				logger.Int("attempts", int(message.Attempts)),
				logger.ErrorField(err))
			return err
		}
		return nil
	}))

	if cfg.LookupdAddress != "" {
		err = consumer.ConnectToNSQLookupd(cfg.LookupdAddress)
	} else {
		err = consumer.ConnectToNSQD(cfg.NSQDAddress)
	}
	if err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect NSQ consumer: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
