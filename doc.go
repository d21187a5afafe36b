// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pitch maps football-pitch coordinates between a normalized field
// space and render space, and generates the standard field markings.
//
// # Overview
//
// Field positions are expressed as percentages (0–100) of the field's width
// and height, independent of any drawing surface. A [Scale] converts them to
// render-space units (for example meters, or SVG user units) and back, while
// [Geometry] produces the named markings of a standard pitch as normalized
// [Shape] values ready to be scaled and painted.
//
//	s := pitch.NewScale(pitch.ScaleOptions{
//		Dimensions: pitch.Dimensions{Width: 105, Height: 68},
//		Padding:    pitch.Padding{Top: 2, Right: 2, Bottom: 2, Left: 2},
//	})
//	spot := s.PenaltySpot(pitch.Right) // {96.0, 36}
//
//	g := pitch.NewGeometry(pitch.StandardDimensions(), pitch.Horizontal)
//	for _, shape := range g.All() {
//		// paint shape
//	}
//
// # Orientation
//
// A vertical pitch is a relabeling of the coordinate system, not a rotation of
// finished shapes: rectangles, lines and circle centers swap their x and y
// components and arc angles rotate by π/2.
//
// # Rendering
//
// The render package defines the layered renderer contract; the svg package
// implements it on an in-process document tree and the engine package selects
// a backend with fallback. The markings package bridges geometry to render
// elements and the preview package rasterizes a pitch to PNG with gg.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 points along +X, increasing toward +Y
package pitch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
