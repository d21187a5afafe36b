// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the pitchserve configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Config is the service configuration.
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	// Renderer is the preferred engine tier: auto, gpu, raster or svg.
	Renderer string

	// PreviewWidth is the default PNG width in pixels.
	PreviewWidth int

	// MaxPreviewWidth caps the width a request may ask for.
	MaxPreviewWidth int

	// CacheSize is the number of rendered GET responses kept in memory.
	CacheSize int

	// LogLevel is debug, info, warn or error.
	LogLevel string
}

// Load reads the configuration from environment variables, falling back to
// defaults for unset or malformed values.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		Environment:     getEnv("ENV", "development"),
		ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 10),
		Renderer:        getEnv("RENDERER", "auto"),
		PreviewWidth:    getEnvAsInt("PREVIEW_WIDTH", 1050),
		MaxPreviewWidth: getEnvAsInt("MAX_PREVIEW_WIDTH", 4096),
		CacheSize:       getEnvAsInt("CACHE_SIZE", 64),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
