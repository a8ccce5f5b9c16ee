// api/messaging/kafka.go
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	skafka "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/community/api/logging"
)

// Writer is the subset of kafka.Writer the producer needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher is what services publish delivered notifications through.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

type KafkaProducer struct {
	writer Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &skafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaProducer{writer: w}
}

// NewKafkaProducerWithWriter allows injecting a test writer.
func NewKafkaProducerWithWriter(w Writer) *KafkaProducer {
	return &KafkaProducer{writer: w}
}

// Publish marshals the value to JSON and writes it under key.
func (p *KafkaProducer) Publish(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal kafka value: %w", err)
	}
	msg := skafka.Message{Key: []byte(key), Value: b}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error("Kafka write error", zap.Error(err), zap.String("key", key))
		return err
	}
	logger.Debug("Kafka message published", zap.String("key", key))
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in when no brokers are configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, key string, value interface{}) error {
	logger.Info("Notification published", zap.String("key", key), zap.Any("value", value))
	return nil
}

func (LogPublisher) Close() error { return nil }
