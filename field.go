// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pitch

import "fmt"

// Dimensions is the size of the field in render-space or real-world units.
type Dimensions struct {
	Width, Height float64
}

// StandardDimensions returns the 105×68 m pitch used when nothing else is
// given.
func StandardDimensions() Dimensions {
	return Dimensions{Width: 105, Height: 68}
}

// Oriented returns d laid out for o: unchanged when horizontal, with width
// and height swapped when vertical. d is taken in horizontal terms.
func (d Dimensions) Oriented(o Orientation) Dimensions {
	if o == Vertical {
		return Dimensions{Width: d.Height, Height: d.Width}
	}
	return d
}

// Orientation selects which axis carries the field's long side.
type Orientation int

const (
	// Horizontal lays the long axis along X (goals left and right).
	Horizontal Orientation = iota

	// Vertical lays the long axis along Y (goals top and bottom).
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation parses "horizontal" or "vertical". The empty string
// parses as Horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("pitch: unknown orientation %q", s)
	}
}

// Padding is a pure translation applied around the field in render space.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns a Padding with the same value on all four sides.
func Uniform(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Side identifies one half of the pitch by its goal.
type Side int

const (
	// Left is the goal at normalized x=0 (top when vertical).
	Left Side = iota

	// Right is the goal at normalized x=100 (bottom when vertical).
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Corner identifies one of the four field corners.
type Corner int

// Field corners in normalized space.
const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Markings holds the real-world measurements the field markings are derived
// from. All lengths share the units of the Dimensions they are used with.
type Markings struct {
	PenaltyAreaDepth float64 // distance from goal line to penalty-area edge
	PenaltyAreaWidth float64 // penalty-area extent along the goal line
	GoalAreaDepth    float64
	GoalAreaWidth    float64
	CenterRadius     float64 // centre circle and penalty arc radius
	PenaltySpot      float64 // distance from goal line to penalty spot
	GoalWidth        float64

	// SpotRadius is the normalized radius of the centre and penalty spots.
	SpotRadius float64
}

// StandardMarkings returns the IFAB measurements in meters.
func StandardMarkings() Markings {
	return Markings{
		PenaltyAreaDepth: 16.5,
		PenaltyAreaWidth: 40.32,
		GoalAreaDepth:    5.5,
		GoalAreaWidth:    18.32,
		CenterRadius:     9.15,
		PenaltySpot:      11,
		GoalWidth:        7.32,
		SpotRadius:       0.5,
	}
}

// penaltySpotRatio is the penalty spot's fraction of the long axis on a
// standard pitch (11 of 105).
const penaltySpotRatio = 11.0 / 105
