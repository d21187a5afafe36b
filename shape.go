// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pitch

import "math"

// ShapeKind discriminates the geometric primitive a Shape describes.
type ShapeKind string

// Shape kinds produced by Geometry.
const (
	KindRect   ShapeKind = "rect"
	KindCircle ShapeKind = "circle"
	KindLine   ShapeKind = "line"
	KindArc    ShapeKind = "arc"
)

// Shape is one named field marking in normalized 0–100 space.
//
// Only the fields belonging to Kind are meaningful:
//   - rect: X, Y, Width, Height
//   - circle: CX, CY, R
//   - line: X1, Y1, X2, Y2
//   - arc: CX, CY, R, StartAngle, EndAngle (radians)
//
// Radii are normalized against the field's long axis.
type Shape struct {
	ID   string
	Kind ShapeKind

	X, Y, Width, Height float64

	CX, CY, R float64

	X1, Y1, X2, Y2 float64

	StartAngle, EndAngle float64
}

func rectShape(id string, x, y, w, h float64) Shape {
	return Shape{ID: id, Kind: KindRect, X: x, Y: y, Width: w, Height: h}
}

func circleShape(id string, cx, cy, r float64) Shape {
	return Shape{ID: id, Kind: KindCircle, CX: cx, CY: cy, R: r}
}

func lineShape(id string, x1, y1, x2, y2 float64) Shape {
	return Shape{ID: id, Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func arcShape(id string, cx, cy, r, start, end float64) Shape {
	return Shape{ID: id, Kind: KindArc, CX: cx, CY: cy, R: r, StartAngle: start, EndAngle: end}
}

// Transform relabels s for orientation o. Horizontal is the identity.
// Vertical swaps every x component with its y counterpart and rotates arc
// angles by π/2, since swapping the axes moves the angle origin by a quarter
// turn.
func (s Shape) Transform(o Orientation) Shape {
	if o != Vertical {
		return s
	}
	switch s.Kind {
	case KindRect:
		s.X, s.Y = s.Y, s.X
		s.Width, s.Height = s.Height, s.Width
	case KindLine:
		s.X1, s.Y1 = s.Y1, s.X1
		s.X2, s.Y2 = s.Y2, s.X2
	case KindCircle:
		s.CX, s.CY = s.CY, s.CX
	case KindArc:
		s.CX, s.CY = s.CY, s.CX
		s.StartAngle += math.Pi / 2
		s.EndAngle += math.Pi / 2
	}
	return s
}

// ArcPoint returns the normalized point at angle a on an arc or circle
// shape, measured from its center. It assumes a square aspect, so callers
// painting onto non-square surfaces should scale the center and radius
// first.
func (s Shape) ArcPoint(a float64) Point {
	return Point{X: s.CX + s.R*math.Cos(a), Y: s.CY + s.R*math.Sin(a)}
}
