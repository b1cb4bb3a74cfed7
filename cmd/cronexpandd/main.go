// Command cronexpandd serves schedule-expression expansion over HTTP and,
// optionally, NATS request/reply.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/t77yq/cronexpand/internal/api"
	"github.com/t77yq/cronexpand/internal/config"
	"github.com/t77yq/cronexpand/internal/metrics"
	"github.com/t77yq/cronexpand/internal/monitor"
	"github.com/t77yq/cronexpand/internal/service"
	"github.com/t77yq/cronexpand/internal/storage"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to YAML config file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	// Metrics
	registry := prometheus.NewRegistry()
	sink := metrics.NewPrometheusSink(registry, logger)

	// Request audit log
	var history storage.HistoryStorage
	if cfg.HistoryPath != "" {
		history, err = storage.NewSQLiteHistory(logger, cfg.HistoryPath)
		if err != nil {
			logger.Fatal("Failed to open history storage", zap.Error(err))
		}
		defer history.Close()

		go cleanupLoop(ctx, logger, history, cfg.HistoryMaxAge)
	}

	// Resource monitor
	collector := monitor.NewCollector(sink, cfg.MonitorInterval, logger)
	collector.Start(ctx)
	defer collector.Stop()

	// NATS responder
	if cfg.NATSURL != "" {
		opts := []nats.Option{
			nats.Name("cronexpandd"),
			nats.MaxReconnects(-1),
			nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
				logger.Warn("NATS disconnected", zap.Error(err))
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
			}),
		}

		nc, err := nats.Connect(cfg.NATSURL, opts...)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer nc.Close()

		responder := service.NewResponder(nc, cfg.NATSSubject, logger, sink, history)
		if err := responder.Start(ctx); err != nil {
			logger.Fatal("Failed to start NATS responder", zap.Error(err))
		}
	}

	// HTTP API
	handler := api.NewHandler(logger, sink, history)
	mux := http.NewServeMux()
	mux.Handle("/v1/expand", handler)
	mux.Handle("/healthz", handler)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Serving expansion API", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", zap.Error(err))
			cancel()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", zap.Error(err))
	}

	logger.Info("Server shutting down gracefully")
}

// cleanupLoop deletes audit records older than maxAge once a day.
func cleanupLoop(ctx context.Context, logger *zap.Logger, history storage.HistoryStorage, maxAge time.Duration) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-maxAge)
			if err := history.DeleteBefore(ctx, cutoff); err != nil {
				logger.Error("Failed to clean up expansion history", zap.Error(err))
			}
		}
	}
}
