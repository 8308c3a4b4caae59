package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dunamismax/imgconvert/internal/codec"
	"github.com/dunamismax/imgconvert/internal/config"
	"github.com/dunamismax/imgconvert/internal/convert"
	"github.com/dunamismax/imgconvert/internal/logging"
	"github.com/dunamismax/imgconvert/internal/notify"
	"github.com/dunamismax/imgconvert/internal/shell"
	"github.com/dunamismax/imgconvert/internal/store"
	"github.com/dunamismax/imgconvert/internal/telemetry"
	"github.com/dunamismax/imgconvert/internal/webhook"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stderr, "[imgconvert] ", log.LstdFlags|log.Lmsgprefix)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	shutdownTracing, err := telemetry.SetupTracing(ctx, telemetry.TraceConfig{
		ServiceName:  "imgconvert",
		CodecBackend: codec.Backend(),
		Exporter:     cfg.Trace.Exporter,
		OTLPEndpoint: cfg.Trace.OTLPEndpoint,
		OTLPInsecure: cfg.Trace.OTLPInsecure,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Printf("tracing shutdown failed: %v", err)
		}
	}()

	if err := codec.Startup(); err != nil {
		return err
	}
	defer codec.Shutdown()

	conversionLog, err := openConversionLog(ctx, cfg.Log, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := conversionLog.Close(); err != nil {
			logger.Printf("conversion log close error: %v", err)
		}
	}()

	svc, err := convert.NewService(codec.Options{JPEGQuality: cfg.Codec.JPEGQuality})
	if err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		metricsServer := serveMetrics(cfg.Metrics.Addr, svc.MetricsHandler(), logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	var notifiers []notify.Notifier
	if cfg.Webhook.URL != "" {
		client, err := webhook.NewClient(webhook.Config{
			Endpoint:      cfg.Webhook.URL,
			SigningSecret: cfg.Webhook.Secret,
			Timeout:       cfg.Webhook.Timeout,
			MaxAttempts:   cfg.Webhook.MaxAttempts,
		})
		if err != nil {
			return err
		}
		notifiers = append(notifiers, notify.NewWebhookNotifier(client))
	}

	sink := notify.NewSink(logger, conversionLog, notifiers...)
	prompter := shell.NewHuhPrompter(cfg.Shell.Theme)

	logger.Printf("codec=%s log=%s start_dir=%s", codec.Backend(), cfg.Log.Path, cfg.Shell.StartDir)
	return shell.New(svc, sink, prompter, cfg.Shell.StartDir).Run(ctx)
}

func openConversionLog(ctx context.Context, cfg config.LogConfig, logger *log.Logger) (*logging.Logger, error) {
	primary, err := store.OpenFileEntryStore(cfg.Path)
	if err != nil {
		return nil, err
	}

	var mirrors []store.EntryStore
	if cfg.PostgresDSN != "" {
		pgStore, err := store.NewPostgresEntryStore(ctx, cfg.PostgresDSN)
		if err != nil {
			logger.Printf("postgres log mirror disabled: %v", err)
		} else {
			mirrors = append(mirrors, pgStore)
		}
	}
	if cfg.Redis.Enabled() {
		redisStore, err := store.NewRedisStreamEntryStore(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.Stream)
		if err != nil {
			logger.Printf("redis log mirror disabled: %v", err)
		} else {
			mirrors = append(mirrors, redisStore)
		}
	}

	return logging.New(logger, primary, mirrors...), nil
}

func serveMetrics(addr string, handler http.Handler, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", handler)

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("metrics server failed: %v", err)
		}
	}()
	return srv
}
