// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pitch

import "math"

// GeometryOption configures a Geometry during creation.
type GeometryOption func(*geometryOptions)

type geometryOptions struct {
	markings Markings
}

func defaultGeometryOptions() geometryOptions {
	return geometryOptions{markings: StandardMarkings()}
}

// WithMarkings replaces the real-world measurements the markings are derived
// from. Use this for youth or futsal pitches.
//
//	g := pitch.NewGeometry(pitch.Dimensions{Width: 40, Height: 20}, pitch.Horizontal,
//		pitch.WithMarkings(futsal))
func WithMarkings(m Markings) GeometryOption {
	return func(o *geometryOptions) {
		o.markings = m
	}
}

// Geometry generates the standard markings of a pitch as normalized shapes.
// It is stateless after construction: every method recomputes its result.
type Geometry struct {
	dims        Dimensions
	orientation Orientation
	markings    Markings
}

// NewGeometry creates a generator for a field of the given real-world
// dimensions. Zero dimension fields fall back to StandardDimensions.
func NewGeometry(dims Dimensions, orientation Orientation, opts ...GeometryOption) *Geometry {
	options := defaultGeometryOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if dims.Width == 0 {
		dims.Width = StandardDimensions().Width
	}
	if dims.Height == 0 {
		dims.Height = StandardDimensions().Height
	}
	return &Geometry{dims: dims, orientation: orientation, markings: options.markings}
}

// Dimensions returns the real-world field dimensions.
func (g *Geometry) Dimensions() Dimensions { return g.dims }

// Orientation returns the orientation applied to every shape.
func (g *Geometry) Orientation() Orientation { return g.orientation }

// Markings returns the measurements the shapes are derived from.
func (g *Geometry) Markings() Markings { return g.markings }

func (g *Geometry) normX(v float64) float64 { return v / g.dims.Width * 100 }
func (g *Geometry) normY(v float64) float64 { return v / g.dims.Height * 100 }

// Outline returns the full field rectangle.
func (g *Geometry) Outline() Shape {
	return rectShape("outline", 0, 0, 100, 100).Transform(g.orientation)
}

// CenterLine returns the halfway line.
func (g *Geometry) CenterLine() Shape {
	return lineShape("center-line", 50, 0, 50, 100).Transform(g.orientation)
}

// CenterCircle returns the centre circle.
func (g *Geometry) CenterCircle() Shape {
	return circleShape("center-circle", 50, 50, g.normX(g.markings.CenterRadius)).Transform(g.orientation)
}

// CenterSpot returns the centre mark.
func (g *Geometry) CenterSpot() Shape {
	return circleShape("center-spot", 50, 50, g.markings.SpotRadius).Transform(g.orientation)
}

// PenaltyArea returns the penalty box for side. Depth is normalized against
// the field width and extent against the field height independently.
func (g *Geometry) PenaltyArea(side Side) Shape {
	return g.box("penalty-area-"+side.String(), side, g.markings.PenaltyAreaDepth, g.markings.PenaltyAreaWidth)
}

// GoalArea returns the six-yard box for side.
func (g *Geometry) GoalArea(side Side) Shape {
	return g.box("goal-area-"+side.String(), side, g.markings.GoalAreaDepth, g.markings.GoalAreaWidth)
}

func (g *Geometry) box(id string, side Side, depth, extent float64) Shape {
	w := g.normX(depth)
	h := g.normY(extent)
	x := 0.0
	if side == Right {
		x = 100 - w
	}
	return rectShape(id, x, 50-h/2, w, h).Transform(g.orientation)
}

// PenaltySpot returns the penalty mark for side.
func (g *Geometry) PenaltySpot(side Side) Shape {
	return circleShape("penalty-spot-"+side.String(), g.spotX(side), 50, g.markings.SpotRadius).Transform(g.orientation)
}

func (g *Geometry) spotX(side Side) float64 {
	x := g.normX(g.markings.PenaltySpot)
	if side == Right {
		return 100 - x
	}
	return x
}

// PenaltyArc returns the part of the circle of radius CenterRadius around
// the penalty spot that lies outside the penalty area.
//
// With dist the real distance from the spot to the penalty-area edge, the
// arc spans ±acos(dist/R) around the direction of the centre line: [−α, α]
// for the left side and [π−α, π+α] for the right. When the edge lies at or
// beyond the radius the arc is empty (α = 0).
func (g *Geometry) PenaltyArc(side Side) Shape {
	r := g.markings.CenterRadius
	dist := math.Abs(g.markings.PenaltyAreaDepth - g.markings.PenaltySpot)

	ratio := 1.0
	if r > 0 {
		ratio = dist / r
	}
	if ratio > 1 {
		Logger().Warn("penalty arc radius does not reach the penalty area edge",
			"side", side.String(), "distance", dist, "radius", r)
		ratio = 1
	}
	alpha := math.Acos(ratio)

	start, end := -alpha, alpha
	if side == Right {
		start, end = math.Pi-alpha, math.Pi+alpha
	}
	id := "penalty-arc-" + side.String()
	return arcShape(id, g.spotX(side), 50, g.normX(r), start, end).Transform(g.orientation)
}

// All returns every marking in paint order. Later shapes paint over earlier
// ones when they share a layer.
func (g *Geometry) All() []Shape {
	return []Shape{
		g.Outline(),
		g.PenaltyArea(Left),
		g.PenaltyArea(Right),
		g.GoalArea(Left),
		g.GoalArea(Right),
		g.CenterCircle(),
		g.PenaltyArc(Left),
		g.PenaltyArc(Right),
		g.CenterLine(),
		g.CenterSpot(),
		g.PenaltySpot(Left),
		g.PenaltySpot(Right),
	}
}
