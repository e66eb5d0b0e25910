package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dropforge/nft-hub/internal/adapter"
	"github.com/dropforge/nft-hub/internal/config"
	"github.com/dropforge/nft-hub/internal/credits"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/processor"
	"github.com/dropforge/nft-hub/internal/providers/jetstream"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/migrations"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventProcessorConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "event-processor",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting NFT Hub event processor")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := migrations.Run(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	creditsClient := credits.NewClient(credits.Config{
		BaseURL:   cfg.Credits.BaseURL,
		AuthToken: cfg.Credits.AuthToken,
	}, adapter.NewHTTPClient(30*time.Second))

	// Durable treasury event consumer
	subscriber, err := jetstream.NewSubscriber(jetstream.SubscriberConfig{
		Config: jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		},
		DurableName: cfg.NATS.ConsumerName,
		MaxDeliver:  cfg.NATS.MaxDeliver,
		AckWait:     cfg.NATS.AckWait,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.Fatal("Failed to create treasury subscriber", zap.Error(err))
	}
	defer subscriber.Close()

	proc := processor.New(dataStore, creditsClient)

	errCh := make(chan error, 1)
	go func() {
		if err := subscriber.SubscribeTreasuryEvents(ctx, proc.Handle); err != nil && ctx.Err() == nil {
			errCh <- err
		}
	}()
	logger.InfoCtx(ctx, "Consuming treasury events",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName),
	)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "subscriber"))
		cancel()
	}

	logger.Info("Event processor stopped")
}
