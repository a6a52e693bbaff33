package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"risparmi/internal/amqp"
	"risparmi/internal/cache"
	"risparmi/internal/cli"
	"risparmi/internal/core"
	apphttp "risparmi/internal/http"
	"risparmi/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	cfg := cli.LoadAndValidateConfig(logger)

	// Report cache with periodic cleanup of expired entries.
	reportCache := cache.NewLRUCache[core.Report](cfg.CacheSize, cfg.CacheTTL)
	cacheManager := cache.NewManager()
	cacheManager.Register(reportCache)
	cacheManager.StartCleanup(cfg.CacheTTL)

	// AMQP is optional. Without it reports are still served over HTTP,
	// they are just never published to the result queue.
	var amqpClient *amqp.Client
	if cfg.AMQPEnabled() {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRequestQueue, cfg.AMQPResultQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	service := services.NewReportService(reportCache, amqpClient)

	srv := apphttp.NewServer(":"+cfg.Port, service, cfg.RateLimitPerMinute)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if err := service.Close(); err != nil {
			logger.Error("Service close error", "error", err)
		}
		cacheManager.Stop()
	})

	logger.Info("Starting risparmi server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	slog.Info("Server stopped gracefully")
}
