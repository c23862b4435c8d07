package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"airbnc/config"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const writeTimeout = 10 * time.Second

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

type Publisher interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type kafkaPublisherImpl struct {
	writer *kafkaGo.Writer
}

// New returns a publisher for the configured brokers, or one that drops every
// message when Kafka is disabled.
func New(config *config.Config) (Publisher, func()) {
	kafkaCfg := config.External.Kafka

	if !kafkaCfg.Enable || len(kafkaCfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, events are not published")

		return noopPublisher{}, func() {}
	}

	transport := &kafkaGo.Transport{}
	if kafkaCfg.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: kafkaCfg.SASL.Username,
			Password: kafkaCfg.SASL.Password,
		}
	}

	publisher := &kafkaPublisherImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(kafkaCfg.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
		},
	}

	log.Info().Strs("brokers", kafkaCfg.Brokers).Msg("Kafka publisher initialized")

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka writer")
		}
	}
}

func (k *kafkaPublisherImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msg.Topic = topic
		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaPublisherImpl) Close() error {
	return k.writer.Close() //nolint:wrapcheck
}

type noopPublisher struct{}

func (noopPublisher) SendMessages(_ context.Context, topic string, messages ...Message) error {
	log.Debug().Str("topic", topic).Int("count", len(messages)).Msg("Kafka disabled, dropping messages")

	return nil
}

func (noopPublisher) Close() error { return nil }
