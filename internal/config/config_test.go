// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "RENDERER", "PREVIEW_WIDTH", "MAX_PREVIEW_WIDTH", "CACHE_SIZE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	want := &Config{
		Port:            "3000",
		Environment:     "development",
		ReadTimeout:     10,
		WriteTimeout:    10,
		Renderer:        "auto",
		PreviewWidth:    1050,
		MaxPreviewWidth: 4096,
		CacheSize:       64,
		LogLevel:        "info",
	}
	if diff := cmp.Diff(want, Load()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("READ_TIMEOUT", "30")
	t.Setenv("WRITE_TIMEOUT", "not-a-number")
	t.Setenv("RENDERER", "svg")
	t.Setenv("PREVIEW_WIDTH", "640")

	cfg := Load()
	if cfg.Port != "8080" || cfg.Environment != "production" || cfg.Renderer != "svg" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.ReadTimeout != 30 {
		t.Errorf("ReadTimeout = %d, want 30", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 10 {
		t.Errorf("WriteTimeout = %d, want default 10 for malformed value", cfg.WriteTimeout)
	}
	if cfg.PreviewWidth != 640 {
		t.Errorf("PreviewWidth = %d, want 640", cfg.PreviewWidth)
	}
}
