package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"url2md-go/pkg/api"
	"url2md-go/pkg/config"
	"url2md-go/pkg/convert"
	"url2md-go/pkg/fetch"
	"url2md-go/pkg/pipeline"

	"gopkg.in/natefinch/lumberjack.v2"
)

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logDir := filepath.Dir(cfg.Log.File)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error(
			"Failed to create log directory", "path", logDir, "error", err,
		)
	}

	logRotator := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}

	multiWriter := io.MultiWriter(os.Stdout, logRotator)
	logger := slog.New(slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	// The engine handle is built exactly once, before serving. A failed
	// build leaves the service running in degraded mode: every convert
	// call fails with converter_uninitialized and the health endpoints
	// report the engine unavailable.
	var engine convert.Engine
	if eng, err := convert.NewEngine(); err != nil {
		slog.Warn("conversion engine failed to initialize, serving degraded", "error", err)
	} else {
		engine = eng
		slog.Info("conversion engine initialized")
	}

	fetcher := fetch.New(cfg.Pipeline.MaxBodyBytes)
	service := pipeline.New(fetcher, engine, cfg.FetchTimeout(), cfg.RequestTimeout())

	router := api.NewRouter(service)

	srv := &http.Server{
		Addr:        fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// Write timeout must outlast the pipeline budget so slow
		// conversions still get a response on the wire.
		WriteTimeout: cfg.RequestTimeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("API server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
