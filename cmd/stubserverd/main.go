// Command stubserverd serves the Secure Ballot API contract from an
// in-memory store, for local development and end-to-end testing of the
// client layer.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/secureballot/secureballot/internal/adapters/handler/http"
	"github.com/secureballot/secureballot/internal/adapters/repository/memory"
	"github.com/secureballot/secureballot/internal/config"
	"github.com/secureballot/secureballot/internal/lib/logger/sl"
)

func main() {
	var (
		configPath string
		seed       bool
	)
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.BoolVar(&seed, "seed", true, "load the demo dataset on startup")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.MustLoad(configPath)
	log := setupLogger(cfg.Env)

	store := memory.NewStore()
	if seed && cfg.Stub.Seed {
		memory.Seed(store)
		log.Info("demo dataset loaded")
	}

	handler := http.NewHandler(store, http.RouterConfig{
		JWTSecret: cfg.Stub.JWTSecret,
		RateLimit: cfg.Stub.RateLimit,
	}, log)

	server := &stdhttp.Server{
		Addr:         cfg.Stub.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Stub.Timeout,
		WriteTimeout: cfg.Stub.Timeout,
		IdleTimeout:  cfg.Stub.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting stub server", slog.String("address", cfg.Stub.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Error("server failed", sl.Err(err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", sl.Err(err))
		os.Exit(1)
	}
	log.Info("stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "dev":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
