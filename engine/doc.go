// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package engine selects a renderer backend by availability and priority.
//
// Three tiers are registered by default:
//
//	gpu     priority 100  gg GPU accelerator present (build with -tags pitchgpu)
//	raster  priority 50   gg drawing context can be created
//	svg     priority 10   always available
//
// Only the svg tier has a renderer implementation; the raster and gpu
// factories are stubs returning ErrNotImplemented, so selection falls back to
// svg unless the caller forces a tier.
//
//	e, err := engine.New(engine.Options{Preferred: engine.Auto})
//	if err != nil {
//		return err
//	}
//	r := e.Renderer()
//	log.Printf("using %s (fallback=%v)", e.Type(), e.Descriptor().FallbackUsed)
package engine
