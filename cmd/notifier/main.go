package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"courtly/internal/notifier"
	"courtly/pkg/config"
	"courtly/pkg/kafka"
	kafkaconfig "courtly/pkg/kafka/config"
)

const (
	ServiceName   = "notifier"
	ConsumerGroup = "courtly-notifier"
)

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Notifier service")

	worker := notifier.NewWorker(notifier.NewLogSender(cfg.Log), cfg.Log)

	kafkaCfg := kafkaconfig.Load()
	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.BookingEventsTopic,
		ConsumerGroup,
		cfg.BookingEventsDLQTopic,
		worker.Handle,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Notifier stopped gracefully")
}
