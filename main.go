package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"lg/exercise-guidance-go-api/internal/content"
	"lg/exercise-guidance-go-api/internal/logsink"
	"lg/exercise-guidance-go-api/internal/service"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to start logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Errorf("server stopped: %v", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run serves until SIGINT/SIGTERM, then shuts down and closes the log sink.
func run(cfg *Config, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	sink := openSink(ctx, cfg, logger)
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warnf("closing log sink: %v", err)
		}
	}()

	page, err := content.Load()
	if err != nil {
		return err
	}

	h := &Handler{
		planner: service.NewPlanner(sink, logger),
		content: page,
		logger:  logger,
	}
	router, err := newRouter(h)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsMiddleware(cfg).Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on :%s (env=%s, log sink=%s)", cfg.Port, cfg.Env, cfg.LogSink)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openSink opens the configured log sink. Logging is best-effort, so a sink
// that cannot be opened is replaced with a no-op and the server still starts.
func openSink(ctx context.Context, cfg *Config, logger *zap.SugaredLogger) logsink.Sink {
	sink, err := logsink.Open(ctx, cfg.sinkOptions())
	if err != nil {
		logger.Warnf("log sink %q unavailable, submissions will not be recorded: %v", cfg.LogSink, err)
		return logsink.Nop{}
	}
	return sink
}

// corsMiddleware allows the configured origins to call the JSON API.
func corsMiddleware(cfg *Config) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
}
