// FILE: cmd/othello-server/main.go
// Package main implements the Othello game server with a RESTful API and
// optional SQLite persistence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"othello/cmd/othello-server/cli"
	"othello/internal/service"
	"othello/internal/storage"
	httptransport "othello/internal/transport/http"
)

const gracefulShutdownTimeout = 5 * time.Second

func main() {
	// CLI database commands bypass the server entirely
	if len(os.Args) > 1 && os.Args[1] == "db" {
		if err := cli.Run(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "CLI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var (
		apiHost     = flag.String("api-host", "localhost", "API server host")
		apiPort     = flag.Int("api-port", 8080, "API server port")
		dev         = flag.Bool("dev", false, "Development mode (relaxed rate limits, WAL journal)")
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
		logLevel    = flag.String("log-level", "info", "Log level (trace|debug|info|warn|error)")
		logJSON     = flag.Bool("log-json", false, "Emit JSON logs instead of console output")
	)
	flag.Parse()

	logger := newLogger(*logLevel, *logJSON)

	// Storage is optional; without it games live in memory only
	var store *storage.Store
	if *storagePath != "" {
		logger.Info().Str("path", *storagePath).Msg("initializing persistent storage")
		var err error
		store, err = storage.NewStore(*storagePath, *dev, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize storage")
		}
		if err := store.InitDB(); err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize schema")
		}
	} else {
		logger.Info().Msg("persistent storage disabled (use -storage-path to enable)")
	}

	svc := service.New(store, logger)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn().Err(err).Msg("service close error")
		}
	}()

	app := httptransport.NewFiberApp(svc, *dev)

	apiAddr := fmt.Sprintf("%s:%d", *apiHost, *apiPort)

	go func() {
		logger.Info().
			Str("addr", apiAddr).
			Bool("dev", *dev).
			Bool("storage", store != nil).
			Msg("othello API server starting")
		logger.Info().Msgf("endpoints: http://%s/api/v1/games", apiAddr)
		logger.Info().Msgf("health: http://%s/health", apiAddr)

		if err := app.Listen(apiAddr); err != nil {
			logger.Error().Err(err).Msg("API server listen error")
		}
	}()

	// Wait for an interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}

func newLogger(level string, jsonOutput bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if jsonOutput {
		return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
