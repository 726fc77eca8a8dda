// Package main provides the entry point for the recommendation API
// server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/config"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/server"
)

var Version = "dev"

func main() {
	settingsPath := flag.String("settings", "", "path to optional settings file")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Str("version", Version).Msg("Starting recommendation server")

	cfg, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	svc, err := server.NewService(Version, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create service")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
		return
	case <-quit:
		log.Info().Msg("Received shutdown signal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := svc.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}

	log.Info().Msg("Server shutdown complete")
}
