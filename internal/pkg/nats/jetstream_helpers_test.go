package nats

import (
	"testing"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/constants"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamConfigBuilder(t *testing.T) {
	cfg := NewStreamConfigBuilder("TEST_STREAM").
		WithSubjects("test.a", "test.b").
		WithStorage(jetstream.MemoryStorage).
		WithReplicas(3).
		WithMaxAge(time.Hour).
		Build()

	assert.Equal(t, "TEST_STREAM", cfg.Name)
	assert.Equal(t, []string{"test.a", "test.b"}, cfg.Subjects)
	assert.Equal(t, jetstream.MemoryStorage, cfg.Storage)
	assert.Equal(t, 3, cfg.Replicas)
	assert.Equal(t, time.Hour, cfg.MaxAge)
	assert.Equal(t, jetstream.DiscardOld, cfg.Discard)

	js := cfg.JetStream()
	assert.Equal(t, cfg.Name, js.Name)
	assert.Equal(t, cfg.Subjects, js.Subjects)
	assert.Equal(t, cfg.MaxMsgs, js.MaxMsgs)
}

func TestConsumerConfigBuilder(t *testing.T) {
	cfg := NewConsumerConfigBuilder("S", "C").
		WithSubject("booking.confirmed").
		WithAckWait(10 * time.Second).
		WithMaxDeliver(2).
		Build()

	js := cfg.JetStream()
	assert.Equal(t, "C", js.Durable)
	assert.Equal(t, "booking.confirmed", js.FilterSubject)
	assert.Equal(t, jetstream.AckExplicitPolicy, js.AckPolicy)
	assert.Equal(t, 10*time.Second, js.AckWait)
	assert.Equal(t, 2, js.MaxDeliver)
}

func TestDefaultConfigs(t *testing.T) {
	streams := DefaultStreamConfigs()
	require.Len(t, streams, 1)
	assert.Equal(t, constants.StreamBookings, streams[0].Name)
	assert.Contains(t, streams[0].Subjects, constants.SubjectBookingWildcard)

	consumers := DefaultConsumerConfigs()
	notifier, ok := consumers[constants.ConsumerBookingNotifier]
	require.True(t, ok)
	assert.Equal(t, constants.StreamBookings, notifier.StreamName)
}

func TestNewClient_InvalidURL(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", "test")

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}
