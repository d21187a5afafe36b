// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"errors"
	"fmt"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/render"
)

// Options configures New.
type Options struct {
	// Preferred is the requested tier. The zero value is Auto.
	Preferred Type

	// Force disables fallback: an unavailable or failing Preferred tier is
	// an error instead of a reason to try the next one. Ignored for Auto.
	Force bool

	// Registry overrides the default registry.
	Registry *Registry
}

// Descriptor describes a selection result.
type Descriptor struct {
	Type          Type
	Capabilities  render.Capabilities
	FallbackUsed  bool
	RequestedType Type
}

// Engine holds the renderer chosen by New.
type Engine struct {
	renderer render.Renderer
	desc     Descriptor
}

// New selects and creates a renderer.
//
// With Auto, tiers are tried from highest to lowest priority, skipping those
// that are unavailable or not implemented. With a specific type, the tier
// and then every lower-priority tier are tried in the same way, unless
// Force is set.
func New(opts Options) (*Engine, error) {
	reg := opts.Registry
	if reg == nil {
		reg = defaultRegistry
	}
	requested := opts.Preferred
	if requested == "" {
		requested = Auto
	}

	if requested == Auto {
		return selectFrom(reg.sorted(false), requested)
	}

	entry, ok := reg.Get(requested)
	if !ok {
		return nil, &UnknownTypeError{Name: string(requested)}
	}

	if opts.Force {
		if !entry.Available() {
			return nil, &NotSupportedError{Type: requested, Reason: "not available on this system"}
		}
		r, err := entry.Factory()
		if err != nil {
			return nil, fmt.Errorf("engine: create %s renderer: %w", requested, err)
		}
		return newEngine(r, entry.Type, requested), nil
	}

	return selectFrom(reg.chain(requested), requested)
}

func selectFrom(chain []Entry, requested Type) (*Engine, error) {
	var lastErr error
	for _, e := range chain {
		if !e.Available() {
			pitch.Logger().Debug("renderer tier unavailable", "type", e.Type)
			continue
		}
		r, err := e.Factory()
		if err != nil {
			if errors.Is(err, ErrNotImplemented) {
				pitch.Logger().Debug("renderer tier not implemented", "type", e.Type)
			} else {
				pitch.Logger().Warn("renderer tier failed", "type", e.Type, "err", err)
				lastErr = err
			}
			continue
		}
		if requested != Auto && e.Type != requested {
			pitch.Logger().Warn("renderer fallback", "requested", requested, "selected", e.Type)
		}
		return newEngine(r, e.Type, requested), nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRenderer, lastErr)
	}
	return nil, ErrNoRenderer
}

func newEngine(r render.Renderer, selected, requested Type) *Engine {
	return &Engine{
		renderer: r,
		desc: Descriptor{
			Type:          selected,
			Capabilities:  r.Capabilities(),
			FallbackUsed:  requested != Auto && selected != requested,
			RequestedType: requested,
		},
	}
}

// Renderer returns the selected, uninitialized renderer.
func (e *Engine) Renderer() render.Renderer { return e.renderer }

// Type returns the selected tier.
func (e *Engine) Type() Type { return e.desc.Type }

// Descriptor returns the selection result.
func (e *Engine) Descriptor() Descriptor { return e.desc }
