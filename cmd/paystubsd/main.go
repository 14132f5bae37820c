package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joseph-ayodele/paystubs-tracker/internal/app"
	"github.com/joseph-ayodele/paystubs-tracker/internal/async"
	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/ingest"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
	"github.com/joseph-ayodele/paystubs-tracker/internal/scheduler"
	"github.com/joseph-ayodele/paystubs-tracker/internal/server"
)

func main() {
	cfg, err := common.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := common.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("paystubsd exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *common.Config, logger *slog.Logger) error {
	a, err := app.Build(ctx, cfg, app.Options{Migrate: true}, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := repository.HealthCheck(ctx, a.DB, 5*time.Second, logger); err != nil {
		return err
	}

	// Listeners
	health := server.NewHealthServer(logger)
	grpcLis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return err
	}
	metricsSrv := server.NewMetricsServer(cfg.Server.MetricsAddr, a.Registry, logger)
	metricsLis, err := net.Listen("tcp", cfg.Server.MetricsAddr)
	if err != nil {
		_ = grpcLis.Close()
		return err
	}

	serveErr := make(chan error, 2)
	go func() { serveErr <- health.Serve(grpcLis) }()
	go func() { serveErr <- metricsSrv.Serve(metricsLis) }()
	go health.WatchDatabase(ctx, a.DB, 15*time.Second, 3*time.Second)

	// Serialized ingestion
	queue := async.NewIngestQueue(a.Ingestor, logger,
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(cfg.Ingest.ProcessTimeout),
	)

	// Periodic integrity check
	verify := func(ctx context.Context) error {
		issues, err := a.Records.Verify(ctx)
		if err != nil {
			return err
		}
		for _, is := range issues {
			logger.Warn("statement.integrity", "id", is.StatementID, "file", is.Filename, "kind", is.Kind, "detail", is.Detail)
		}
		return nil
	}
	sched := scheduler.New(logger, 10*time.Minute)
	if err := sched.AddJob(cfg.Server.VerifySchedule, "verify", verify); err != nil {
		return err
	}
	sched.Start()
	go sched.RunNow("verify", verify)
	for name, next := range sched.Jobs() {
		logger.Info("scheduler.job.next", "job", name, "at", next.Format(time.RFC3339))
	}

	// Inbox
	if err := os.MkdirAll(cfg.Ingest.InboxDir, 0o755); err != nil {
		return err
	}
	paths, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Ingest.InboxDir},
		InitialScan: true,
		Debounce:    cfg.Ingest.Debounce,
		SkipHidden:  cfg.Ingest.SkipHidden,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("paystubsd started",
		"inbox", cfg.Ingest.InboxDir,
		"grpc", cfg.Server.GRPCAddr,
		"metrics", cfg.Server.MetricsAddr,
		"verify", cfg.Server.VerifySchedule,
	)

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case p, ok := <-paths:
			if !ok {
				break loop
			}
			if err := queue.Enqueue(ctx, async.Job{Path: p}); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("enqueue failed", "path", p, "error", err)
			}
		case werr, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			logger.Warn("watcher error", "error", werr)
		case runErr = <-serveErr:
			break loop
		}
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	queue.Shutdown(shutdownCtx)
	if err := sched.Stop(shutdownCtx); err != nil {
		logger.Warn("scheduler stop", "error", err)
	}
	health.Stop()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("metrics shutdown", "error", err)
	}
	return runErr
}
