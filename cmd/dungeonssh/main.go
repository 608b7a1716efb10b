// Package main serves the game over SSH, one independent level per connection.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/server"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	defaultAddr    = ":2222"
	defaultHostKey = "host_key"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	hostKey := defaultHostKey
	if path := os.Getenv("DUNGEON_HOST_KEY"); path != "" {
		hostKey = path
	}
	if err := ensureHostKey(hostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "ssh")
	switch {
	case errors.Is(err, telemetry.ErrNoEndpoint):
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	listenAddr := defaultAddr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}

	srv := server.NewSSHServer(listenAddr, hostKey, cfg, gamedata.MustLoadPalette())
	log.Printf("Connect with: ssh -t -p %s you@localhost", listenAddr[1:])
	if err := srv.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

// ensureHostKey writes a new ed25519 host key to path unless one exists.
func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}
