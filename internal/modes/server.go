package modes

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"fileproc/internal/audit"
	"fileproc/internal/processor/core/command"
	"fileproc/internal/processor/core/runner"
	"fileproc/internal/processor/core/scratch"
	"fileproc/internal/processor/core/session"
	"fileproc/internal/processor/metrics"
	"fileproc/internal/processor/server"
	"fileproc/pkg/config"
	"fileproc/pkg/logger"
	"fileproc/pkg/platform"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// RunServer serves until SIGINT or SIGTERM.
func RunServer(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", cfg.GetServerAddress())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return Serve(ctx, cfg, lis)
}

// Serve runs the file processor on lis until ctx is done, then stops
// gracefully. It owns lis.
func Serve(ctx context.Context, cfg *config.Config, lis net.Listener) error {
	log := logger.WithField("mode", "server")

	log.Info("starting fileproc server",
		"address", lis.Addr().String(),
		"platform", runtime.GOOS,
		"scratchDir", cfg.Processor.ScratchDir,
		"maxSessions", cfg.Processor.MaxConcurrentSessions)

	p := platform.NewPlatform()
	checkTools(p, cfg.Processor.Tools, log)

	store, err := scratch.NewStore(cfg.Processor.ScratchDir, p, logger.Global())
	if err != nil {
		_ = lis.Close()
		return err
	}
	if cfg.Processor.SweepMaxAge > 0 {
		if _, err := store.Sweep(cfg.Processor.SweepMaxAge); err != nil {
			log.Warn("scratch sweep failed", "error", err)
		}
	}

	recorder, err := audit.NewFromConfig(cfg.Audit, logger.Global())
	if err != nil {
		_ = lis.Close()
		return fmt.Errorf("failed to set up audit trail: %w", err)
	}
	recorder.Start()
	defer func() {
		if err := recorder.Close(); err != nil {
			log.Warn("audit trail closed with errors", "error", err)
		}
	}()

	registry := metrics.NewRegistry()
	sessionMetrics := metrics.New()
	if err := sessionMetrics.Register(registry); err != nil {
		_ = lis.Close()
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	if err := metrics.RegisterAuditQueue(registry, recorder.Dropped); err != nil {
		_ = lis.Close()
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	controller := session.NewController(session.Dependencies{
		Store: store,
		Runner: runner.NewProcessRunner(p, runner.Config{
			Timeout:        cfg.Processor.CommandTimeout,
			GracePeriod:    cfg.Processor.KillGracePeriod,
			MaxOutputBytes: cfg.Processor.MaxOutputBytes,
			Dir:            store.Dir(),
		}, logger.Global()),
		Builder: command.NewBuilder(command.Tools{
			Ghostscript: cfg.Processor.Tools.Ghostscript,
			PDFToText:   cfg.Processor.Tools.PDFToText,
			ImageMagick: cfg.Processor.Tools.ImageMagick,
		}),
		Audit:    recorder,
		Observer: sessionMetrics,
		Logger:   logger.Global(),
	}, cfg.Processor.ChunkSize)

	service := server.NewFileProcessorServer(controller, cfg.Processor.MaxConcurrentSessions, sessionMetrics)
	grpcServer, err := server.NewGRPCServer(cfg, service)
	if err != nil {
		_ = lis.Close()
		return fmt.Errorf("failed to create gRPC server: %w", err)
	}

	var exporter *metrics.Exporter
	if cfg.Metrics.Enabled {
		exporter = metrics.NewExporter(cfg.Metrics.Address, cfg.Metrics.Path, registry)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server listening", "address", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("gRPC server stopped: %w", err)
		}
		return nil
	})

	if exporter != nil {
		g.Go(func() error {
			log.Info("metrics endpoint listening", "address", cfg.Metrics.Address, "path", cfg.Metrics.Path)
			if err := exporter.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics endpoint stopped: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)

		if exporter != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := exporter.Shutdown(shutdownCtx); err != nil {
				log.Warn("metrics endpoint shutdown failed", "error", err)
			}
		}

		stopGRPC(grpcServer, cfg.Server.ShutdownTimeout, log)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}

// stopGRPC waits for running sessions up to timeout, then cuts them off.
func stopGRPC(s *grpc.Server, timeout time.Duration, log *logger.Logger) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	if timeout <= 0 {
		<-done
		return
	}

	select {
	case <-done:
	case <-time.After(timeout):
		log.Warn("graceful stop timed out, closing remaining sessions")
		s.Stop()
		<-done
	}
}

// checkTools warns about converters that are not on PATH. The server still
// starts; affected operations fail per session.
func checkTools(p platform.Platform, tools config.ToolsConfig, log *logger.Logger) {
	for _, tool := range []string{tools.Ghostscript, tools.PDFToText, tools.ImageMagick} {
		if _, err := p.LookPath(tool); err != nil {
			log.Warn("converter not found", "tool", tool, "error", err)
		}
	}
}

// SetupLogger builds the global logger from the logging section.
func SetupLogger(cfg config.LoggingConfig) (func() error, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out, closer, err := logger.OpenOutput(cfg.Output)
	if err != nil {
		return nil, err
	}
	logger.SetGlobal(logger.NewWithConfig(logger.Config{
		Level:  level,
		Output: out,
		Format: cfg.Format,
	}))
	return closer, nil
}
