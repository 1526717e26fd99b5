package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/JavaDevVictoria/mentormatch/internal/adapters/http/api"
	"github.com/JavaDevVictoria/mentormatch/internal/adapters/repository"
	app "github.com/JavaDevVictoria/mentormatch/internal/app"
	"github.com/JavaDevVictoria/mentormatch/internal/config"
	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
	"github.com/JavaDevVictoria/mentormatch/internal/export"
	"github.com/JavaDevVictoria/mentormatch/pkg/logger"
	"github.com/JavaDevVictoria/mentormatch/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics.
	// We collect our own custom system metrics instead.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		// Logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Create the directory service with configuration options
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithStore(repository.NewMemStore(repository.WithInitialCapacity(cfg.StoreCapacityHint))),
		app.WithDefaultMaxMentees(cfg.DefaultMaxMentees),
		app.WithMaxMenteesLimit(cfg.MaxMenteesLimit),
		app.WithDefaultExperienceLevel(model.ExperienceLevel(cfg.DefaultExperienceLevel)),
	)

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	// Write the pipe-delimited match export and the detailed directory
	// report before exiting.
	if matches := svc.Matches(shutdownCtx); len(matches) > 0 {
		exporter := export.New()
		if err := exporter.WriteMatches(cfg.ExportPath, matches); err != nil {
			loggerInstance.Error(ctx, "failed to write match export", logger.String("path", cfg.ExportPath), logger.Error(err))
		} else {
			loggerInstance.Info(ctx, "match export written", logger.String("path", cfg.ExportPath))
		}
		if err := exporter.WriteReport(cfg.ReportPath, svc.Mentors(shutdownCtx), svc.Mentees(shutdownCtx), matches); err != nil {
			loggerInstance.Error(ctx, "failed to write directory report", logger.String("path", cfg.ReportPath), logger.Error(err))
		} else {
			loggerInstance.Info(ctx, "directory report written", logger.String("path", cfg.ReportPath))
		}
	}

	loggerInstance.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
