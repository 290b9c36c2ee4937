package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tripwise/internal/notifier"
	"tripwise/pkg/config"
	"tripwise/pkg/kafka"
)

const ServiceName = "tripwise-notifier"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Fatal("Kafka brokers are required for the notifier")
	}

	consumer := kafka.NewConsumer(
		cfg.KafkaBrokers,
		cfg.KafkaConsumerGroup,
		cfg.KafkaBookingEventsTopic,
		cfg.Log,
	)
	defer consumer.Close()

	worker := notifier.NewWorker(consumer, notifier.NewLogSender(cfg.Log), cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting notifier", "topic", cfg.KafkaBookingEventsTopic, "group", cfg.KafkaConsumerGroup)
	if err := worker.Run(ctx); err != nil {
		cfg.Log.Fatal("Notifier stopped with error", "error", err)
	}
	cfg.Log.Info("Notifier stopped")
}
