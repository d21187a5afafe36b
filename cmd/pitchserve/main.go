// Command pitchserve serves pitch renderings over HTTP.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/internal/config"
	"github.com/gogpu/pitch/internal/server"
)

// ============================================================
// Pitch Service
// ============================================================

func main() {
	cfg := config.Load()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	pitch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Pitch Service on %s (env: %s, renderer: %s)", addr, cfg.Environment, cfg.Renderer)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
