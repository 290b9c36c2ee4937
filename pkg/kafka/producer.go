package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"tripwise/pkg/logger"
)

// Producer wraps a kafka-go writer. A nil Producer is a valid no-op so
// services run without a broker in development.
type Producer struct {
	writer *kafka.Writer
	topic  string
	log    *logger.Logger
}

func NewProducer(brokers []string, topic string, log *logger.Logger) *Producer {
	if len(brokers) == 0 {
		log.Info("Kafka brokers not configured, event publishing disabled")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka producer: " + fmt.Sprintf(msg, args...))
		}),
	}

	return &Producer{writer: writer, topic: topic, log: log}
}

// Publish JSON-encodes the payload and writes it keyed for partition
// ordering. Publish on a nil Producer is a no-op.
func (p *Producer) Publish(ctx context.Context, key string, payload any) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	p.log.Debug("Published event", "topic", p.topic, "key", key)
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
