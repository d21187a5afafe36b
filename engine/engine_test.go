// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/pitch/render"
	"github.com/gogpu/pitch/svg"
)

func always() bool { return true }
func never() bool  { return false }

// testRegistry mirrors the default tiers with controllable probes.
func testRegistry(gpu, raster bool) *Registry {
	probe := func(ok bool) func() bool {
		if ok {
			return always
		}
		return never
	}
	r := NewRegistry()
	r.Register(SVG, PrioritySVG, newSVG, nil)
	r.Register(Raster, PriorityRaster, stub(Raster), probe(raster))
	r.Register(GPU, PriorityGPU, stub(GPU), probe(gpu))
	return r
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"", Auto, false},
		{"auto", Auto, false},
		{"GPU", GPU, false},
		{" raster ", Raster, false},
		{"svg", SVG, false},
		{"webgl", "", true},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseType(%q) = %q, want %q", tt.in, got, tt.want)
		}
		var ute *UnknownTypeError
		if tt.wantErr && !errors.As(err, &ute) {
			t.Errorf("ParseType(%q) error type = %T, want *UnknownTypeError", tt.in, err)
		}
	}
}

func TestAutoSelectsSVG(t *testing.T) {
	for _, tc := range []struct {
		name        string
		gpu, raster bool
	}{
		{"nothing detected", false, false},
		{"raster detected", false, true},
		{"everything detected", true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, err := New(Options{Registry: testRegistry(tc.gpu, tc.raster)})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			want := Descriptor{
				Type:          SVG,
				Capabilities:  svg.New().Capabilities(),
				FallbackUsed:  false,
				RequestedType: Auto,
			}
			if diff := cmp.Diff(want, e.Descriptor()); diff != "" {
				t.Errorf("Descriptor() mismatch (-want +got):\n%s", diff)
			}
			if _, ok := e.Renderer().(*svg.Renderer); !ok {
				t.Errorf("Renderer() = %T, want *svg.Renderer", e.Renderer())
			}
		})
	}
}

func TestPreferredFallsBack(t *testing.T) {
	for _, requested := range []Type{GPU, Raster} {
		t.Run(string(requested), func(t *testing.T) {
			e, err := New(Options{Preferred: requested, Registry: testRegistry(true, true)})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			d := e.Descriptor()
			if d.Type != SVG || !d.FallbackUsed || d.RequestedType != requested {
				t.Errorf("Descriptor() = %+v", d)
			}
		})
	}
}

func TestPreferredSVGNoFallback(t *testing.T) {
	e, err := New(Options{Preferred: SVG, Registry: testRegistry(false, false)})
	if err != nil {
		t.Fatal(err)
	}
	if e.Type() != SVG || e.Descriptor().FallbackUsed {
		t.Errorf("Descriptor() = %+v", e.Descriptor())
	}
}

func TestForceUnavailable(t *testing.T) {
	_, err := New(Options{Preferred: GPU, Force: true, Registry: testRegistry(false, true)})

	var nse *NotSupportedError
	if !errors.As(err, &nse) {
		t.Fatalf("New() error = %v, want *NotSupportedError", err)
	}
	if nse.Type != GPU {
		t.Errorf("NotSupportedError.Type = %q, want gpu", nse.Type)
	}
}

func TestForceNotImplemented(t *testing.T) {
	_, err := New(Options{Preferred: Raster, Force: true, Registry: testRegistry(false, true)})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("New() error = %v, want ErrNotImplemented", err)
	}
}

func TestForceSVG(t *testing.T) {
	e, err := New(Options{Preferred: SVG, Force: true, Registry: testRegistry(false, false)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if e.Type() != SVG {
		t.Errorf("Type() = %q, want svg", e.Type())
	}
}

func TestUnknownType(t *testing.T) {
	_, err := New(Options{Preferred: "webgl", Registry: testRegistry(true, true)})
	var ute *UnknownTypeError
	if !errors.As(err, &ute) || ute.Name != "webgl" {
		t.Errorf("New() error = %v, want *UnknownTypeError", err)
	}
}

func TestNoRenderer(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	r.Register(SVG, PrioritySVG, func() (render.Renderer, error) { return nil, boom }, nil)
	r.Register(Raster, PriorityRaster, stub(Raster), nil)

	_, err := New(Options{Registry: r})
	if !errors.Is(err, ErrNoRenderer) || !errors.Is(err, boom) {
		t.Errorf("New() error = %v, want ErrNoRenderer wrapping boom", err)
	}

	_, err = New(Options{Registry: NewRegistry()})
	if !errors.Is(err, ErrNoRenderer) {
		t.Errorf("New() on empty registry error = %v, want ErrNoRenderer", err)
	}
}

func TestImplementedTierIsPreferred(t *testing.T) {
	r := testRegistry(true, true)
	r.Register(Raster, PriorityRaster, newSVG, always)

	e, err := New(Options{Registry: r})
	if err != nil {
		t.Fatal(err)
	}
	if e.Type() != Raster {
		t.Errorf("Type() = %q, want raster", e.Type())
	}

	e, err = New(Options{Preferred: GPU, Registry: r})
	if err != nil {
		t.Fatal(err)
	}
	if d := e.Descriptor(); d.Type != Raster || !d.FallbackUsed {
		t.Errorf("Descriptor() = %+v, want raster with fallback", d)
	}
}

func TestRegistryOrdering(t *testing.T) {
	r := testRegistry(false, true)

	if diff := cmp.Diff([]Type{GPU, Raster, SVG}, r.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Type{Raster, SVG}, r.Available()); diff != "" {
		t.Errorf("Available() mismatch (-want +got):\n%s", diff)
	}

	var chain []Type
	for _, e := range r.chain(Raster) {
		chain = append(chain, e.Type)
	}
	if diff := cmp.Diff([]Type{Raster, SVG}, chain); diff != "" {
		t.Errorf("chain(raster) mismatch (-want +got):\n%s", diff)
	}
	if r.chain("missing") != nil {
		t.Error("chain of unknown type should be nil")
	}
}

func TestRegistryGetUnregister(t *testing.T) {
	r := testRegistry(false, false)

	e, ok := r.Get(SVG)
	if !ok || e.Priority != PrioritySVG || !e.Available() {
		t.Fatalf("Get(svg) = %+v, %v", e, ok)
	}
	e.Priority = 1000
	if again, _ := r.Get(SVG); again.Priority != PrioritySVG {
		t.Error("Get() returned a shared entry")
	}

	r.Unregister(GPU)
	if _, ok := r.Get(GPU); ok {
		t.Error("Unregister(gpu) left the entry")
	}
	if got := r.Detect(); got != (Support{Raster: false, SVG: true}) {
		t.Errorf("Detect() = %+v", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	if diff := cmp.Diff([]Type{GPU, Raster, SVG}, Default().List()); diff != "" {
		t.Errorf("Default().List() mismatch (-want +got):\n%s", diff)
	}
	if !Detect().SVG {
		t.Error("svg must always be detected")
	}
	if diff := cmp.Diff([]Type{SVG}, Selectable()); diff != "" {
		t.Errorf("Selectable() mismatch (-want +got):\n%s", diff)
	}

	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if e.Type() != SVG {
		t.Errorf("default selection = %q, want svg", e.Type())
	}
}
