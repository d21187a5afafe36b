// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package markings

import (
	"fmt"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/render"
)

// Layer ids and z-indexes used by Draw.
const (
	LayerPitch   = "pitch"
	LayerMarkers = "markers"

	ZPitch   = 0
	ZMarkers = 10
)

// Draw renders the pitch markings and the event markers on r, which must be
// initialized. The pitch and markers layers are created when missing and
// cleared before drawing. Invalid events are skipped and reported in the
// returned error after everything valid has been drawn.
func Draw(r render.Renderer, g *pitch.Geometry, s pitch.Scale, th Theme, events []Event) error {
	pitchLayer, err := ensureLayer(r, LayerPitch, ZPitch)
	if err != nil {
		return err
	}
	markerLayer, err := ensureLayer(r, LayerMarkers, ZMarkers)
	if err != nil {
		return err
	}

	if err := r.Render(Pitch(g, s, th), &render.RenderOptions{Layer: pitchLayer.ID(), Clear: true}); err != nil {
		return fmt.Errorf("markings: render pitch: %w", err)
	}
	elems, invalid := Markers(events, s, th)
	if err := r.Render(elems, &render.RenderOptions{Layer: markerLayer.ID(), Clear: true}); err != nil {
		return fmt.Errorf("markings: render markers: %w", err)
	}
	return invalid
}

// Move updates already drawn markers to the events' new positions, animated
// by tr when the renderer supports it.
func Move(r render.Renderer, events []Event, s pitch.Scale, th Theme, tr *render.Transition) error {
	elems, invalid := Markers(events, s, th)
	if err := r.Update(elems, tr); err != nil {
		return fmt.Errorf("markings: update markers: %w", err)
	}
	return invalid
}

func ensureLayer(r render.Renderer, id string, z int) (*render.Layer, error) {
	if l := r.Layer(id); l != nil {
		return l, nil
	}
	l, err := r.AddLayer(id, z)
	if err != nil {
		return nil, fmt.Errorf("markings: add %s layer: %w", id, err)
	}
	return l, nil
}
