// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pitch

// Scale converts between normalized field coordinates (0–100 on each axis)
// and render-space coordinates.
//
// Scale is an immutable value: the With* methods return a modified copy and
// never change the receiver. The zero Scale has zero dimensions; use
// NewScale to start from the standard pitch.
//
// Out-of-range input is not clamped. A normalized x of 110 maps past the
// field edge, which callers use to detect off-field elements. Zero or
// negative dimensions are accepted and produce degenerate but defined output.
type Scale struct {
	Dimensions  Dimensions
	Orientation Orientation
	Padding     Padding
}

// ScaleOptions configures NewScale. Zero dimension fields fall back to
// StandardDimensions; the zero Orientation is Horizontal and the zero
// Padding is no padding.
type ScaleOptions struct {
	Dimensions  Dimensions
	Orientation Orientation
	Padding     Padding
}

// NewScale creates a Scale from opts, filling unspecified dimensions from
// StandardDimensions.
func NewScale(opts ScaleOptions) Scale {
	s := Scale{
		Dimensions:  StandardDimensions(),
		Orientation: opts.Orientation,
		Padding:     opts.Padding,
	}
	return s.WithDimensions(opts.Dimensions)
}

// WithDimensions returns a copy with d merged onto the current dimensions.
// A zero Width or Height keeps the receiver's current value.
func (s Scale) WithDimensions(d Dimensions) Scale {
	if d.Width != 0 {
		s.Dimensions.Width = d.Width
	}
	if d.Height != 0 {
		s.Dimensions.Height = d.Height
	}
	return s
}

// WithPadding returns a copy with the padding replaced by p.
func (s Scale) WithPadding(p Padding) Scale {
	s.Padding = p
	return s
}

// WithOrientation returns a copy with the orientation replaced by o.
func (s Scale) WithOrientation(o Orientation) Scale {
	s.Orientation = o
	return s
}

// ToPixel maps a normalized point to render space:
//
//	x = p.X/100*Width + Padding.Left
//	y = p.Y/100*Height + Padding.Top
func (s Scale) ToPixel(p Point) Point {
	return Point{
		X: p.X/100*s.Dimensions.Width + s.Padding.Left,
		Y: p.Y/100*s.Dimensions.Height + s.Padding.Top,
	}
}

// ToNormalized is the inverse of ToPixel. An axis with zero extent maps
// to 0.
func (s Scale) ToNormalized(p Point) Point {
	return Point{
		X: normalize(p.X-s.Padding.Left, s.Dimensions.Width),
		Y: normalize(p.Y-s.Padding.Top, s.Dimensions.Height),
	}
}

func normalize(v, extent float64) float64 {
	if extent == 0 {
		return 0
	}
	return v / extent * 100
}

// Size returns the full render-space extent including padding.
func (s Scale) Size() Dimensions {
	return Dimensions{
		Width:  s.Dimensions.Width + s.Padding.Left + s.Padding.Right,
		Height: s.Dimensions.Height + s.Padding.Top + s.Padding.Bottom,
	}
}

// LongAxis returns the render-space length of the field's long axis: the
// width when horizontal, the height when vertical.
func (s Scale) LongAxis() float64 {
	if s.Orientation == Vertical {
		return s.Dimensions.Height
	}
	return s.Dimensions.Width
}

// CenterSpot returns the centre spot in render space.
func (s Scale) CenterSpot() Point {
	return s.ToPixel(Point{X: 50, Y: 50})
}

// PenaltySpot returns the penalty spot for side in render space. The spot
// sits 11/105 of the long axis from the goal line.
func (s Scale) PenaltySpot(side Side) Point {
	x := penaltySpotRatio * 100
	if side == Right {
		x = 100 - x
	}
	return s.ToPixel(s.orient(Point{X: x, Y: 50}))
}

// GoalCenter returns the middle of the goal line for side in render space.
func (s Scale) GoalCenter(side Side) Point {
	x := 0.0
	if side == Right {
		x = 100
	}
	return s.ToPixel(s.orient(Point{X: x, Y: 50}))
}

// Corner returns the field corner c in render space.
func (s Scale) Corner(c Corner) Point {
	var p Point
	switch c {
	case TopRight:
		p = Point{X: 100, Y: 0}
	case BottomLeft:
		p = Point{X: 0, Y: 100}
	case BottomRight:
		p = Point{X: 100, Y: 100}
	}
	return s.ToPixel(p)
}

// orient relabels a landmark given in horizontal terms onto the vertical
// layout.
func (s Scale) orient(p Point) Point {
	if s.Orientation == Vertical {
		return p.Swap()
	}
	return p
}
