// Package main is the entry point for the local terminal game.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, "terminal")
	switch {
	case errors.Is(err, telemetry.ErrNoEndpoint):
		// Tracing not configured
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(cfg, gamedata.MustLoadPalette())
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
	log.Printf("Played seed %d", g.Seed())
}
