//go:build !integration

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/config"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/logger"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/itinerary-hub/internal/web"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	var shutdown atomic.Bool
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown.Store(true)
		logger.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpServer.Shutdown(ctx)
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown.Load() {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("").Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(cfg.LogLevel)

	redisFactory, err := redisfactory.New(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid redis configuration")
	}

	appRouter, err := web.SetupRouter(cfg, log, redisFactory)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to set up router")
	}

	httpServer := &http.Server{
		Addr:    cfg.ListenAddress(),
		Handler: appRouter,
	}

	code := serverApp(httpServer, log)
	_ = redisFactory.Close()
	os.Exit(code)
}
