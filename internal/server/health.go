// Package server hosts the daemon's listeners: gRPC health and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
)

// ServiceName is the health service name reported alongside the overall ("") status.
const ServiceName = "paystubs.Ingest"

// HealthServer is a gRPC server exposing only grpc.health.v1 and reflection.
type HealthServer struct {
	grpc   *grpc.Server
	health *health.Server
	logger *slog.Logger
}

func NewHealthServer(logger *slog.Logger) *HealthServer {
	if logger == nil {
		logger = slog.Default()
	}
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{grpc: gs, health: hs, logger: logger}
}

// SetServing flips the overall and service status together.
func (s *HealthServer) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

// Serve blocks until the listener fails or Stop is called.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.logger.Info("grpc health serving", "addr", lis.Addr().String())
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop marks everything NOT_SERVING and drains in-flight RPCs.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

// WatchDatabase pings p every interval and mirrors the result into the
// health status until ctx is done. The first check runs immediately.
func (s *HealthServer) WatchDatabase(ctx context.Context, p repository.Pinger, interval, timeout time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := s.checkDatabase(ctx, p, timeout, nil)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			last = s.checkDatabase(ctx, p, timeout, &last)
		}
	}
}

func (s *HealthServer) checkDatabase(ctx context.Context, p repository.Pinger, timeout time.Duration, prev *bool) bool {
	ok := repository.HealthCheck(ctx, p, timeout, s.logger) == nil
	if prev == nil || *prev != ok {
		s.logger.Info("health.status.changed", "serving", ok)
	}
	s.SetServing(ok)
	return ok
}
