package kafka_test

import (
	"airbnc/config"
	"airbnc/infras/kafka"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "12",
		Value: map[string]any{"booking_id": 12},
	}

	got, err := msg.ToKafkaMessage()

	require.NoError(t, err)
	assert.Equal(t, []byte("12"), got.Key)
	assert.JSONEq(t, `{"booking_id":12}`, string(got.Value))
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Kafka.Enable = false

	publisher, cleanup := kafka.New(cfg)
	defer cleanup()

	err := publisher.SendMessages(context.Background(), "booking.created", kafka.Message{Key: "1", Value: 1})

	assert.NoError(t, err)
	assert.NoError(t, publisher.Close())
}
