package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/iyhunko/product-catalog-api/internal/config"
	"github.com/iyhunko/product-catalog-api/internal/logger"
	sqspkg "github.com/iyhunko/product-catalog-api/internal/sqs"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.LogLevel)

	handleErr("loading config", conf.RequireQueue())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
	handleErr("loading AWS config", err)

	consumer := sqspkg.NewConsumer(sqsClient, conf.AWS.SQSQueueURL, sqspkg.LogNotification)

	slog.Info("Notification service started. Listening for messages...")
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		handleErr("consuming messages", err)
	}
	slog.Info("Notification service stopped")
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
