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
	"github.com/dropforge/nft-hub/internal/api/server"
	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/config"
	"github.com/dropforge/nft-hub/internal/credits"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/mutations"
	"github.com/dropforge/nft-hub/internal/providers/jetstream"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/migrations"
	"github.com/dropforge/nft-hub/internal/uploads"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting NFT Hub API")

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
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(30 * time.Second)

	// Outbound event publisher
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.Fatal("Failed to create event publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Upstream service clients
	creditsClient := credits.NewClient(credits.Config{
		BaseURL:   cfg.Credits.BaseURL,
		AuthToken: cfg.Credits.AuthToken,
	}, httpClient)

	uploadsConfig := uploads.Config{
		BaseURL:   cfg.Uploads.BaseURL,
		AuthToken: cfg.Uploads.AuthToken,
	}
	var uploader uploads.Client
	if cfg.Uploads.Provider == "nft_storage" {
		uploader = uploads.NewNftStorageClient(uploadsConfig, httpClient)
	} else {
		uploader = uploads.NewClient(uploadsConfig, httpClient)
	}

	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	// Wire the write pipeline: registry -> service -> job runner. The runner
	// dispatches continuations back into the service, so jobs bind last.
	registry := blockchains.NewRegistry(publisher)
	service := mutations.NewService(dataStore, creditsClient, registry)
	runner := metadatajson.NewRunner(dataStore, uploader, service, redisClient, cfg.Worker.PoolSize)
	service.BindJobs(runner)

	runnerErrCh := make(chan error, 1)
	go func() {
		if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
			runnerErrCh <- err
		}
	}()

	// Create and start server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, dataStore, service)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	case err := <-runnerErrCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "job-runner"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
