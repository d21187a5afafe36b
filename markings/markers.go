// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package markings

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/render"
)

// ErrInvalidEvent is wrapped by errors for event records that cannot be
// placed.
var ErrInvalidEvent = errors.New("markings: invalid event")

// Team identifies the side an event belongs to.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Event is a located match event such as a shot or a pass origin.
// Position is in normalized 0–100 coordinates; positions outside the field
// are allowed.
type Event struct {
	ID       string      `json:"id"`
	Type     string      `json:"type,omitempty"`
	Position pitch.Point `json:"position"`
	Team     Team        `json:"team"`
}

// Validate reports whether e can be drawn.
func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidEvent)
	}
	if !finite(e.Position.X) || !finite(e.Position.Y) {
		return fmt.Errorf("%w %q: position is not finite", ErrInvalidEvent, e.ID)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Markers places each valid event as a circle keyed by its id. Invalid
// events are skipped and reported together in the returned error; the
// elements for the valid ones are returned either way.
func Markers(events []Event, s pitch.Scale, th Theme) ([]render.Element, error) {
	out := make([]render.Element, 0, len(events))
	var errs []error
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		p := s.ToPixel(ev.Position)
		e := render.NewCircle(p.X, p.Y, th.MarkerRadius).
			With("id", ev.ID).
			With("fill", th.TeamColor(ev.Team.ID)).
			With("stroke", th.MarkerStroke).
			With("stroke-width", th.MarkerStrokeWidth)
		if ev.Team.ID != "" {
			e = e.With("data-team", ev.Team.ID)
		}
		if ev.Type != "" {
			e = e.With("data-type", ev.Type)
		}
		out = append(out, e)
	}
	return out, errors.Join(errs...)
}
