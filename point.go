// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pitch

// Point represents a position, either in normalized field space (0–100 on
// each axis) or in render space, depending on where it came from.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Swap returns the point with its X and Y components exchanged.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// InField reports whether the point lies within the normalized [0,100] range
// on both axes.
func (p Point) InField() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}
