// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/pitch/render"
	"github.com/gogpu/pitch/svg"
)

// Type names a renderer tier.
type Type string

// Renderer tiers.
const (
	Auto   Type = "auto"
	GPU    Type = "gpu"
	Raster Type = "raster"
	SVG    Type = "svg"
)

// Standard priorities.
const (
	PriorityGPU    = 100
	PriorityRaster = 50
	PrioritySVG    = 10
)

// ParseType parses a tier name. The empty string is Auto.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return Auto, nil
	case Auto, GPU, Raster, SVG:
		return t, nil
	default:
		return "", &UnknownTypeError{Name: s}
	}
}

// Factory creates an uninitialized renderer.
type Factory func() (render.Renderer, error)

// Entry is a registered tier.
type Entry struct {
	// Type is the unique tier name.
	Type Type

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates renderer instances.
	Factory Factory

	// Available reports whether the tier can run on this system.
	Available func() bool
}

// Registry holds renderer tiers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[Type]*Entry
}

// NewRegistry creates an empty registry.
// Most code should use Default, which has the standard tiers registered.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Type]*Entry)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a tier. If available is nil the tier is assumed always
// available. Registering an existing type replaces the previous entry.
func (r *Registry) Register(t Type, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[Type]*Entry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[t] = &Entry{
		Type:      t,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a tier.
func (r *Registry) Unregister(t Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, t)
}

// Get returns a copy of the entry for t.
func (r *Registry) Get(t Type) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[t]
	if !ok {
		return nil, false
	}
	c := *e
	return &c, true
}

// List returns every registered type, highest priority first.
func (r *Registry) List() []Type {
	return types(r.sorted(false))
}

// Available returns the types whose probe reports true, highest priority
// first.
func (r *Registry) Available() []Type {
	return types(r.sorted(true))
}

// chain returns the fallback chain starting at t: t itself followed by every
// lower-priority tier, highest first.
func (r *Registry) chain(t Type) []Entry {
	start, ok := r.Get(t)
	if !ok {
		return nil
	}
	var out []Entry
	for _, e := range r.sorted(false) {
		if e.Type == t || e.Priority < start.Priority {
			out = append(out, e)
		}
	}
	return out
}

// sorted returns copies of the entries ordered by descending priority, then
// by name for a stable order.
func (r *Registry) sorted(onlyAvailable bool) []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, *e)
	}
	r.mu.RUnlock()

	if onlyAvailable {
		entries = slices.DeleteFunc(entries, func(e Entry) bool { return !e.Available() })
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Type, b.Type)
	})
	return entries
}

func types(entries []Entry) []Type {
	out := make([]Type, len(entries))
	for i, e := range entries {
		out[i] = e.Type
	}
	return out
}

// Support reports which tiers are available.
type Support struct {
	GPU    bool
	Raster bool
	SVG    bool
}

// Detect probes the default registry.
func Detect() Support {
	return defaultRegistry.Detect()
}

// Detect probes each standard tier registered in r.
func (r *Registry) Detect() Support {
	probe := func(t Type) bool {
		e, ok := r.Get(t)
		return ok && e.Available()
	}
	return Support{
		GPU:    probe(GPU),
		Raster: probe(Raster),
		SVG:    probe(SVG),
	}
}

// Selectable returns the tiers of the default registry that New can
// currently produce a renderer for.
func Selectable() []Type {
	return defaultRegistry.Selectable()
}

// Selectable returns the available tiers whose factory produces a renderer,
// highest priority first. Unlike Available it calls each factory, so tiers
// registered as stubs are left out. Created renderers are destroyed
// immediately.
func (r *Registry) Selectable() []Type {
	var out []Type
	for _, e := range r.sorted(true) {
		rd, err := e.Factory()
		if err != nil || rd == nil {
			continue
		}
		rd.Destroy()
		out = append(out, e.Type)
	}
	return out
}

func newSVG() (render.Renderer, error) {
	return svg.New(), nil
}

func init() {
	defaultRegistry.Register(SVG, PrioritySVG, newSVG, nil)
	defaultRegistry.Register(Raster, PriorityRaster, stub(Raster), rasterAvailable)
	defaultRegistry.Register(GPU, PriorityGPU, stub(GPU), gpuAvailable)
}
