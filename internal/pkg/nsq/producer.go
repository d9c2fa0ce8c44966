package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
)

// Envelope carries the event subject alongside its payload, since an NSQ topic
// has no subject hierarchy of its own
type Envelope struct {
	Subject string          `json:"subject"`
	Payload json.RawMessage `json:"payload"`
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
	topic    string
}

// NewProducer creates a new NSQ producer that publishes every subject to topic
func NewProducer(address, topic string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer, topic: topic}, nil
}

// Publish wraps data in an Envelope and sends it to the producer's topic
func (p *Producer) Publish(subject string, data []byte) error {
	body, err := EncodeEnvelope(subject, data)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(p.topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// EncodeEnvelope builds the wire body for subject and payload
func EncodeEnvelope(subject string, data []byte) ([]byte, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("payload for %s is not valid JSON", subject)
	}
	body, err := json.Marshal(Envelope{Subject: subject, Payload: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return body, nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping(_ context.Context) error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
