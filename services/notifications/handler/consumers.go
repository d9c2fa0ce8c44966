package handler

import (
	"context"
	"fmt"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/constants"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	natspkg "github.com/evproyectos/aventados-isw-server/internal/pkg/nats"
	nsqpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/nsq"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/rabbitmq"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	rabbitQueueNotifier   = "booking_notifier"
	rabbitBindingBookings = "booking.#"
)

// InitNATSConsumer makes sure the booking stream exists and starts the durable notifier consumer
func (h *EventHandler) InitNATSConsumer(ctx context.Context, client *natspkg.Client) (jetstream.ConsumeContext, error) {
	for _, stream := range natspkg.DefaultStreamConfigs() {
		if err := client.EnsureStream(ctx, stream); err != nil {
			return nil, err
		}
	}

	config, ok := natspkg.DefaultConsumerConfigs()[constants.ConsumerBookingNotifier]
	if !ok {
		return nil, fmt.Errorf("missing consumer config %s", constants.ConsumerBookingNotifier)
	}

	cc, err := client.ConsumeMessages(ctx, config, h.HandleJetStream)
	if err != nil {
		return nil, err
	}
	logger.Info("JetStream notifier consumer started",
		logger.String("stream", config.StreamName),
		logger.String("consumer", config.ConsumerName))
	return cc, nil
}

// InitNSQConsumer subscribes the notifier channel to the booking topic
func (h *EventHandler) InitNSQConsumer(cfg models.NSQConfig) (*nsqpkg.Consumer, error) {
	consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
		Topic:          constants.TopicBookingEvents,
		Channel:        cfg.Channel,
		NSQDAddress:    cfg.NSQDAddress,
		LookupdAddress: cfg.LookupdAddress,
		MaxInFlight:    cfg.MaxInFlight,
	}, h.HandleNSQ)
	if err != nil {
		return nil, err
	}
	logger.Info("NSQ notifier consumer started",
		logger.String("topic", constants.TopicBookingEvents),
		logger.String("channel", cfg.Channel))
	return consumer, nil
}

// InitRabbitMQConsumer binds the notifier queue to every booking routing key
func (h *EventHandler) InitRabbitMQConsumer(ctx context.Context, client *rabbitmq.Client) error {
	if err := client.Consume(ctx, rabbitQueueNotifier, rabbitBindingBookings, h.HandleRabbitMQ); err != nil {
		return err
	}
	logger.Info("RabbitMQ notifier consumer started",
		logger.String("queue", rabbitQueueNotifier),
		logger.String("binding", rabbitBindingBookings))
	return nil
}
