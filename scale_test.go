// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pitch

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func approxEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= tol {
		return true
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) <= tol
}

func TestNewScaleDefaults(t *testing.T) {
	s := NewScale(ScaleOptions{})

	want := Scale{Dimensions: StandardDimensions(), Orientation: Horizontal}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("NewScale() mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleToPixelCenter(t *testing.T) {
	s := NewScale(ScaleOptions{Dimensions: Dimensions{Width: 105, Height: 68}})

	got := s.ToPixel(Pt(50, 50))
	if got != (Point{X: 52.5, Y: 34}) {
		t.Errorf("ToPixel(50,50) = %v, want {52.5 34}", got)
	}
}

func TestScaleRoundTrip(t *testing.T) {
	scales := []Scale{
		NewScale(ScaleOptions{}),
		NewScale(ScaleOptions{Dimensions: Dimensions{Width: 800, Height: 520}, Padding: Uniform(20)}),
		NewScale(ScaleOptions{Dimensions: Dimensions{Width: 68, Height: 105}, Orientation: Vertical,
			Padding: Padding{Top: 1.5, Right: 3, Bottom: 7, Left: 0.25}}),
		NewScale(ScaleOptions{Dimensions: Dimensions{Width: 1, Height: 1000}}),
	}

	for _, s := range scales {
		for x := 0.0; x <= 100; x += 12.5 {
			for y := 0.0; y <= 100; y += 7.25 {
				p := Pt(x, y)
				got := s.ToNormalized(s.ToPixel(p))
				if !approxEqual(got.X, p.X, 1e-5) || !approxEqual(got.Y, p.Y, 1e-5) {
					t.Errorf("scale %+v: ToNormalized(ToPixel(%v)) = %v", s, p, got)
				}
			}
		}
	}
}

func TestScalePaddingTranslation(t *testing.T) {
	paddings := []Padding{
		{},
		Uniform(5),
		{Top: 3, Right: 0, Bottom: 9, Left: 11},
		{Top: -2, Left: -4},
	}
	for _, p := range paddings {
		s := NewScale(ScaleOptions{Padding: p})
		got := s.ToPixel(Pt(0, 0))
		if got.X != p.Left || got.Y != p.Top {
			t.Errorf("padding %+v: ToPixel(0,0) = %v, want {%v %v}", p, got, p.Left, p.Top)
		}
	}
}

func TestScaleOutOfRangeNotClamped(t *testing.T) {
	s := NewScale(ScaleOptions{Dimensions: Dimensions{Width: 100, Height: 50}})

	got := s.ToPixel(Pt(110, -10))
	if !approxEqual(got.X, 110, 1e-9) || !approxEqual(got.Y, -5, 1e-9) {
		t.Errorf("ToPixel(110,-10) = %v, want {110 -5}", got)
	}
	if n := s.ToNormalized(Pt(120, 60)); !approxEqual(n.X, 120, 1e-9) || !approxEqual(n.Y, 120, 1e-9) {
		t.Errorf("ToNormalized(120,60) = %v, want {120 120}", n)
	}
}

func TestScaleZeroDimensions(t *testing.T) {
	s := Scale{Padding: Padding{Top: 4, Left: 7}}

	for _, p := range []Point{Pt(0, 0), Pt(50, 50), Pt(100, 100)} {
		if got := s.ToPixel(p); got != (Point{X: 7, Y: 4}) {
			t.Errorf("zero dims ToPixel(%v) = %v, want padding offset", p, got)
		}
	}
	if got := s.ToNormalized(Pt(30, 30)); got != (Point{}) {
		t.Errorf("zero dims ToNormalized() = %v, want origin", got)
	}
}

func TestScaleNegativeDimensions(t *testing.T) {
	s := NewScale(ScaleOptions{Dimensions: Dimensions{Width: -100, Height: -50}})

	got := s.ToPixel(Pt(50, 50))
	if got.X != -50 || got.Y != -25 {
		t.Errorf("ToPixel() = %v, want {-50 -25}", got)
	}
	back := s.ToNormalized(got)
	if !approxEqual(back.X, 50, 1e-9) || !approxEqual(back.Y, 50, 1e-9) {
		t.Errorf("ToNormalized() = %v, want {50 50}", back)
	}
}

func TestScaleWithIsImmutable(t *testing.T) {
	orig := NewScale(ScaleOptions{})

	padded := orig.WithPadding(Uniform(10))
	vertical := orig.WithOrientation(Vertical)
	wider := orig.WithDimensions(Dimensions{Width: 120})

	if orig.Padding != (Padding{}) || orig.Orientation != Horizontal || orig.Dimensions != StandardDimensions() {
		t.Errorf("original scale mutated: %+v", orig)
	}
	if padded.Padding != Uniform(10) {
		t.Errorf("WithPadding() padding = %+v", padded.Padding)
	}
	if vertical.Orientation != Vertical {
		t.Errorf("WithOrientation() = %v, want vertical", vertical.Orientation)
	}
	if wider.Dimensions != (Dimensions{Width: 120, Height: 68}) {
		t.Errorf("WithDimensions() = %+v, want {120 68}", wider.Dimensions)
	}
}

func TestScaleWithDimensionsMergesCurrent(t *testing.T) {
	s := NewScale(ScaleOptions{Dimensions: Dimensions{Width: 200, Height: 90}})

	got := s.WithDimensions(Dimensions{Height: 40})
	if got.Dimensions != (Dimensions{Width: 200, Height: 40}) {
		t.Errorf("WithDimensions(height only) = %+v, want {200 40}", got.Dimensions)
	}
}

func TestScaleLandmarks(t *testing.T) {
	s := NewScale(ScaleOptions{Dimensions: Dimensions{Width: 105, Height: 68}})
	opt := cmpopts.EquateApprox(0, 0.1)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"CenterSpot", s.CenterSpot(), Pt(52.5, 34)},
		{"PenaltySpot(Left)", s.PenaltySpot(Left), Pt(11, 34)},
		{"PenaltySpot(Right)", s.PenaltySpot(Right), Pt(94, 34)},
		{"GoalCenter(Left)", s.GoalCenter(Left), Pt(0, 34)},
		{"GoalCenter(Right)", s.GoalCenter(Right), Pt(105, 34)},
		{"Corner(TopLeft)", s.Corner(TopLeft), Pt(0, 0)},
		{"Corner(TopRight)", s.Corner(TopRight), Pt(105, 0)},
		{"Corner(BottomLeft)", s.Corner(BottomLeft), Pt(0, 68)},
		{"Corner(BottomRight)", s.Corner(BottomRight), Pt(105, 68)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, opt); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := s.PenaltySpot(Right); got.Y != 34 {
		t.Errorf("PenaltySpot(Right).Y = %v, want exactly 34", got.Y)
	}
}

func TestScaleVerticalLandmarks(t *testing.T) {
	s := NewScale(ScaleOptions{Dimensions: Dimensions{Width: 68, Height: 105}, Orientation: Vertical})
	opt := cmpopts.EquateApprox(0, 0.1)

	if diff := cmp.Diff(Pt(34, 11), s.PenaltySpot(Left), opt); diff != "" {
		t.Errorf("PenaltySpot(Left) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Pt(34, 105), s.GoalCenter(Right), opt); diff != "" {
		t.Errorf("GoalCenter(Right) mismatch (-want +got):\n%s", diff)
	}
	if got := s.LongAxis(); got != 105 {
		t.Errorf("LongAxis() = %v, want 105", got)
	}
}

func TestScaleSize(t *testing.T) {
	s := NewScale(ScaleOptions{Padding: Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}})

	if got := s.Size(); got != (Dimensions{Width: 111, Height: 72}) {
		t.Errorf("Size() = %+v, want {111 72}", got)
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"", Horizontal, false},
		{"horizontal", Horizontal, false},
		{"vertical", Vertical, false},
		{"diagonal", Horizontal, true},
	}
	for _, tt := range tests {
		got, err := ParseOrientation(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrientation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseOrientation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDimensionsOriented(t *testing.T) {
	if got := StandardDimensions().Oriented(Horizontal); got != StandardDimensions() {
		t.Errorf("Oriented(Horizontal) = %v, want %v", got, StandardDimensions())
	}
	if got, want := StandardDimensions().Oriented(Vertical), (Dimensions{Width: 68, Height: 105}); got != want {
		t.Errorf("Oriented(Vertical) = %v, want %v", got, want)
	}
}

func TestStandardValuesAreCopies(t *testing.T) {
	d := StandardDimensions()
	d.Width = 1
	m := StandardMarkings()
	m.PenaltySpot = 1

	if got := StandardDimensions().Width; got != 105 {
		t.Errorf("StandardDimensions().Width = %v after caller mutation, want 105", got)
	}
	if got := StandardMarkings().PenaltySpot; got != 11 {
		t.Errorf("StandardMarkings().PenaltySpot = %v after caller mutation, want 11", got)
	}

	s := NewScale(ScaleOptions{})
	spot := NewGeometry(StandardDimensions(), Horizontal).PenaltySpot(Left)
	if px := s.ToPixel(Pt(spot.CX, spot.CY)); !approxEqual(px.X, s.PenaltySpot(Left).X, 1e-9) {
		t.Errorf("geometry spot x = %v, scale spot x = %v", px.X, s.PenaltySpot(Left).X)
	}
}
