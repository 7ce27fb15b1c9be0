// Package server parses configuration and runs the site server.
package server

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/abismo-rpg/comandos/internal/blob"
	"github.com/abismo-rpg/comandos/internal/platform/config"
	"github.com/abismo-rpg/comandos/internal/platform/otel"
	"github.com/abismo-rpg/comandos/internal/storage/sqlite"
	"github.com/abismo-rpg/comandos/internal/web"
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr     string `env:"COMANDOS_HTTP_ADDR"`
	DatabasePath string `env:"COMANDOS_DB_PATH"`
	AssetsPath   string `env:"COMANDOS_ASSETS_PATH"`
	SessionKey   string `env:"COMANDOS_SESSION_KEY"`
	SessionTTL   time.Duration
}

// ParseConfig loads the environment and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		HTTPAddr:     "localhost:8080",
		DatabasePath: "comandos.db",
		AssetsPath:   "data/assets",
		SessionTTL:   7 * 24 * time.Hour,
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DatabasePath, "db-path", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.AssetsPath, "assets-path", cfg.AssetsPath, "asset storage directory")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "session lifetime")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the site server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	sessionKey, err := DecodeSessionKey(cfg.SessionKey)
	if err != nil {
		return err
	}

	shutdownTracing, err := otel.Setup(ctx, "comandos")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	assets, err := blob.OpenDisk(cfg.AssetsPath)
	if err != nil {
		return fmt.Errorf("open asset store: %w", err)
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr:   cfg.HTTPAddr,
		Store:      store,
		Assets:     assets,
		SessionKey: sessionKey,
		SessionTTL: cfg.SessionTTL,
	})
	if err != nil {
		return fmt.Errorf("init site server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve site: %w", err)
	}
	return nil
}

// DecodeSessionKey decodes the hex-encoded session signing key.
func DecodeSessionKey(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("COMANDOS_SESSION_KEY is required")
	}
	key, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode session key: %w", err)
	}
	if len(key) < 32 {
		return nil, fmt.Errorf("session key must be at least 32 bytes")
	}
	return key, nil
}
