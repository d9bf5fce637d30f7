package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog-api/internal/config"
	httpAPI "github.com/iyhunko/product-catalog-api/internal/http"
	"github.com/iyhunko/product-catalog-api/internal/http/controller"
	"github.com/iyhunko/product-catalog-api/internal/logger"
	"github.com/iyhunko/product-catalog-api/internal/metrics"
	"github.com/iyhunko/product-catalog-api/internal/model"
	"github.com/iyhunko/product-catalog-api/internal/repository/memory"
	"github.com/iyhunko/product-catalog-api/internal/service"
	sqspkg "github.com/iyhunko/product-catalog-api/internal/sqs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.LogLevel)
	if conf.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	productRepository := memory.NewProductRepository(model.SeedProducts()...)

	// Product notifications are optional; without a queue the API runs standalone.
	var notifier service.Notifier
	if conf.AWS.SQSQueueURL != "" {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
		handleErr("loading AWS config", err)
		notifier = sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
		slog.Info("Publishing product notifications", slog.String("queueURL", conf.AWS.SQSQueueURL))
	}

	productService := service.NewProductService(productRepository, notifier)

	ctr := controller.New(conf)
	productCtr := controller.NewProductController(productService)
	engine := gin.New()
	if err := engine.SetTrustedProxies(nil); err != nil {
		handleErr("configuring trusted proxies", err)
	}
	engine = httpAPI.InitRouter(conf, engine, ctr, productCtr)

	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port), slog.String("env", conf.Env))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metricsServer := metrics.StartMetricsServer(conf)

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", slog.Any("err", err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Metrics server shutdown failed", slog.Any("err", err))
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
