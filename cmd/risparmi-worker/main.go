package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"risparmi/internal/amqp"
	"risparmi/internal/cache"
	"risparmi/internal/cli"
	"risparmi/internal/core"
	"risparmi/internal/services"
	"risparmi/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting risparmi-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	if !cfg.AMQPEnabled() {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRequestQueue, cfg.AMQPResultQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	reportCache := cache.NewLRUCache[core.Report](cfg.CacheSize, cfg.CacheTTL)
	cacheManager := cache.NewManager()
	cacheManager.Register(reportCache)
	cacheManager.StartCleanup(cfg.CacheTTL)
	defer cacheManager.Stop()

	service := services.NewReportService(reportCache, amqpClient)
	reportWorker := worker.NewReportWorker(service)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return reportWorker.Run(groupCtx, amqpClient)
	})

	group.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
			return nil
		case <-groupCtx.Done():
			return groupCtx.Err()
		}
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
