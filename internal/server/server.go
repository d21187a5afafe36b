// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package server exposes pitch rendering over HTTP.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/gogpu/pitch/engine"
	"github.com/gogpu/pitch/internal/cache"
	"github.com/gogpu/pitch/internal/config"
)

// ============================================================
// Application
// ============================================================

// New builds the fiber application with middleware and routes for cfg.
// It fails only when cfg names an unknown renderer type.
func New(cfg *config.Config) (*fiber.App, error) {
	preferred, err := engine.ParseType(cfg.Renderer)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Pitch Service",
	})

	app.Use(recover.New())
	app.Use(Logger())

	h := &handlers{
		preferred:    preferred,
		previewWidth: cfg.PreviewWidth,
		maxWidth:     cfg.MaxPreviewWidth,
		cache:        cache.New[string, cached](cfg.CacheSize),
	}

	app.Get("/health/live", h.live)
	app.Get("/health/ready", h.ready)

	app.Get("/pitch.svg", h.pitchSVG)
	app.Get("/pitch.png", h.pitchPNG)
	app.Post("/render", h.render)

	return app, nil
}

// Logger returns the request logging middleware.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | Content-Type: ${reqHeader:Content-Type}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}
