// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package markings converts pitch geometry and event records into
// render.Elements and draws them on a renderer in two layers.
package markings

import "maps"

// Theme holds the colours and sizes used for drawing. A Theme is a value;
// use DefaultTheme and override fields rather than sharing one instance.
type Theme struct {
	// PitchFill fills the outline rectangle. Empty means no fill.
	PitchFill string

	// LineColor strokes every marking and fills the spots.
	LineColor string

	// LineWidth is the marking stroke width in render units.
	LineWidth float64

	// MarkerRadius is the event marker radius in render units.
	MarkerRadius float64

	// MarkerStroke outlines event markers.
	MarkerStroke string

	// MarkerStrokeWidth is the marker outline width in render units.
	MarkerStrokeWidth float64

	// MarkerFill is used for teams without an entry in TeamColors.
	MarkerFill string

	// TeamColors maps a team id to its marker fill.
	TeamColors map[string]string
}

// DefaultTheme returns the standard green pitch with white lines.
func DefaultTheme() Theme {
	return Theme{
		PitchFill:         "#2d6a4f",
		LineColor:         "#ffffff",
		LineWidth:         0.3,
		MarkerRadius:      1,
		MarkerStroke:      "#1b1b1b",
		MarkerStrokeWidth: 0.2,
		MarkerFill:        "#f4a261",
		TeamColors: map[string]string{
			"home": "#e63946",
			"away": "#457b9d",
		},
	}
}

// WithTeamColor returns a copy of t with the colour for team set. The
// receiver's map is not modified.
func (t Theme) WithTeamColor(team, color string) Theme {
	colors := maps.Clone(t.TeamColors)
	if colors == nil {
		colors = make(map[string]string, 1)
	}
	colors[team] = color
	t.TeamColors = colors
	return t
}

// TeamColor returns the marker fill for a team id.
func (t Theme) TeamColor(team string) string {
	if c, ok := t.TeamColors[team]; ok {
		return c
	}
	return t.MarkerFill
}
