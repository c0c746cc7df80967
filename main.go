package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/PavanAnganna90/portfolio/internal/config"
	"github.com/PavanAnganna90/portfolio/internal/logging"
	"github.com/PavanAnganna90/portfolio/internal/portfolio"
	"github.com/PavanAnganna90/portfolio/internal/telemetry"
	"github.com/PavanAnganna90/portfolio/internal/web"
)

// Set via -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(config.Profile())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting portfolio",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := tel.Shutdown(ctx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	site := portfolio.Default().WithContact(cfg.Site.Email, cfg.Site.Photo)
	if err := site.Validate(); err != nil {
		return fmt.Errorf("invalid site content: %w", err)
	}

	if cfg.App.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	var visitors *web.VisitorMetrics
	if cfg.Site.TrackVisitors {
		visitors, err = web.NewVisitorMetrics(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("creating visitor metrics: %w", err)
		}
	}

	router, err := web.NewRouter(web.RouterConfig{
		Logger:      logger,
		Site:        site,
		IconBaseURL: cfg.Site.IconBaseURL,
		ImagesDir:   cfg.Site.ImagesDir,
		BuildInfo:   web.NewBuildInfo(Version, Commit, BuildTime),
		Tracing:     tel.Middleware(),
		Visitors:    visitors,
		Gatherer:    prometheus.DefaultGatherer,
	})
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	server := web.NewServer(&cfg.Server, router, logger)
	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until SIGINT/SIGTERM or a server error, then drains
// in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *web.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
