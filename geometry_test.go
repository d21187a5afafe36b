// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pitch

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGeometryOutline(t *testing.T) {
	g := NewGeometry(StandardDimensions(), Horizontal)

	want := Shape{ID: "outline", Kind: KindRect, Width: 100, Height: 100}
	if diff := cmp.Diff(want, g.Outline()); diff != "" {
		t.Errorf("Outline() mismatch (-want +got):\n%s", diff)
	}
}

func TestGeometryDefaultsDimensions(t *testing.T) {
	g := NewGeometry(Dimensions{}, Horizontal)
	if g.Dimensions() != StandardDimensions() {
		t.Errorf("Dimensions() = %+v, want %+v", g.Dimensions(), StandardDimensions())
	}
}

func TestGeometryCenterCircle(t *testing.T) {
	g := NewGeometry(StandardDimensions(), Horizontal)

	c := g.CenterCircle()
	if c.Kind != KindCircle || c.CX != 50 || c.CY != 50 {
		t.Fatalf("CenterCircle() = %+v", c)
	}
	if want := 9.15 / 105 * 100; math.Abs(c.R-want) > 1e-12 {
		t.Errorf("CenterCircle().R = %v, want %v", c.R, want)
	}
}

func TestGeometryPenaltyAreaPerAxis(t *testing.T) {
	g := NewGeometry(StandardDimensions(), Horizontal)
	opt := cmpopts.EquateApprox(0, 1e-9)

	wantW := 16.5 / 105 * 100
	wantH := 40.32 / 68 * 100

	left := g.PenaltyArea(Left)
	wantLeft := Shape{ID: "penalty-area-left", Kind: KindRect, X: 0, Y: 50 - wantH/2, Width: wantW, Height: wantH}
	if diff := cmp.Diff(wantLeft, left, opt); diff != "" {
		t.Errorf("PenaltyArea(Left) mismatch (-want +got):\n%s", diff)
	}

	right := g.PenaltyArea(Right)
	if math.Abs(right.X-(100-wantW)) > 1e-9 {
		t.Errorf("PenaltyArea(Right).X = %v, want %v", right.X, 100-wantW)
	}
	if right.X+right.Width != 100 {
		t.Errorf("PenaltyArea(Right) should end at 100, ends at %v", right.X+right.Width)
	}
}

func TestGeometryGoalArea(t *testing.T) {
	g := NewGeometry(StandardDimensions(), Horizontal)

	ga := g.GoalArea(Left)
	if ga.ID != "goal-area-left" || ga.X != 0 {
		t.Errorf("GoalArea(Left) = %+v", ga)
	}
	if want := 18.32 / 68 * 100; math.Abs(ga.Height-want) > 1e-9 {
		t.Errorf("GoalArea(Left).Height = %v, want %v", ga.Height, want)
	}
}

func TestGeometryPenaltyArc(t *testing.T) {
	g := NewGeometry(Dimensions{Width: 105, Height: 68}, Horizontal)

	left := g.PenaltyArc(Left)
	if left.Kind != KindArc {
		t.Fatalf("PenaltyArc(Left).Kind = %v, want arc", left.Kind)
	}
	if math.Abs(left.CX-10.48) > 0.1 {
		t.Errorf("PenaltyArc(Left).CX = %v, want ~10.48", left.CX)
	}
	if math.Abs(left.StartAngle+left.EndAngle) > 1e-12 {
		t.Errorf("PenaltyArc(Left) angles not symmetric: start=%v end=%v", left.StartAngle, left.EndAngle)
	}

	alpha := math.Acos(5.5 / 9.15)
	if math.Abs(left.EndAngle-alpha) > 1e-12 {
		t.Errorf("PenaltyArc(Left).EndAngle = %v, want %v", left.EndAngle, alpha)
	}

	right := g.PenaltyArc(Right)
	if math.Abs(right.StartAngle-(math.Pi-alpha)) > 1e-12 || math.Abs(right.EndAngle-(math.Pi+alpha)) > 1e-12 {
		t.Errorf("PenaltyArc(Right) angles = [%v, %v], want [π−α, π+α]", right.StartAngle, right.EndAngle)
	}
	if math.Abs(right.CX-(100-left.CX)) > 1e-9 {
		t.Errorf("PenaltyArc(Right).CX = %v, want %v", right.CX, 100-left.CX)
	}
}

func TestGeometryPenaltyArcEndsOnBoxEdge(t *testing.T) {
	g := NewGeometry(StandardDimensions(), Horizontal)

	arc := g.PenaltyArc(Left)
	box := g.PenaltyArea(Left)

	// Endpoints lie on the penalty-area edge along x.
	for _, a := range []float64{arc.StartAngle, arc.EndAngle} {
		x := arc.CX + arc.R*math.Cos(a)
		if math.Abs(x-box.Width) > 1e-9 {
			t.Errorf("arc endpoint x = %v, want box edge %v", x, box.Width)
		}
	}
}

func TestGeometryPenaltyArcDegenerate(t *testing.T) {
	var buf bytes.Buffer
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	m := StandardMarkings()
	m.PenaltyAreaDepth = 30

	g := NewGeometry(StandardDimensions(), Horizontal, WithMarkings(m))
	arc := g.PenaltyArc(Left)

	if math.IsNaN(arc.StartAngle) || math.IsNaN(arc.EndAngle) {
		t.Fatalf("PenaltyArc() produced NaN angles: %+v", arc)
	}
	if arc.StartAngle != 0 || arc.EndAngle != 0 {
		t.Errorf("PenaltyArc() = [%v, %v], want empty arc [0, 0]", arc.StartAngle, arc.EndAngle)
	}
	if !strings.Contains(buf.String(), "penalty arc") {
		t.Errorf("expected a warning about the penalty arc, got %q", buf.String())
	}
}

func TestGeometryOrientationSymmetry(t *testing.T) {
	dims := []Dimensions{StandardDimensions(), {Width: 120, Height: 90}, {Width: 90, Height: 45}}

	for _, d := range dims {
		h := NewGeometry(d, Horizontal)
		v := NewGeometry(d, Vertical)

		hl, vl := h.CenterLine(), v.CenterLine()
		want := hl
		want.X1, want.Y1, want.X2, want.Y2 = hl.Y1, hl.X1, hl.Y2, hl.X2
		if diff := cmp.Diff(want, vl); diff != "" {
			t.Errorf("dims %+v: vertical CenterLine mismatch (-want +got):\n%s", d, diff)
		}
	}
}

func TestShapeTransformVertical(t *testing.T) {
	tests := []struct {
		name string
		in   Shape
		want Shape
	}{
		{
			name: "rect",
			in:   rectShape("r", 1, 2, 3, 4),
			want: rectShape("r", 2, 1, 4, 3),
		},
		{
			name: "line",
			in:   lineShape("l", 1, 2, 3, 4),
			want: lineShape("l", 2, 1, 4, 3),
		},
		{
			name: "circle",
			in:   circleShape("c", 10, 20, 5),
			want: circleShape("c", 20, 10, 5),
		},
		{
			name: "arc",
			in:   arcShape("a", 10, 50, 8, -0.5, 0.5),
			want: arcShape("a", 50, 10, 8, -0.5+math.Pi/2, 0.5+math.Pi/2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.in.Transform(Vertical)); diff != "" {
				t.Errorf("Transform(Vertical) mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.in, tt.in.Transform(Horizontal)); diff != "" {
				t.Errorf("Transform(Horizontal) should be identity (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGeometryVerticalArcPointsDown(t *testing.T) {
	g := NewGeometry(StandardDimensions(), Vertical)

	arc := g.PenaltyArc(Left)
	mid := (arc.StartAngle + arc.EndAngle) / 2
	if math.Abs(mid-math.Pi/2) > 1e-12 {
		t.Errorf("vertical left arc centred at %v, want π/2", mid)
	}
	if arc.CX != 50 {
		t.Errorf("vertical left arc CX = %v, want 50", arc.CX)
	}
}

func TestGeometryAllOrder(t *testing.T) {
	g := NewGeometry(StandardDimensions(), Horizontal)

	var ids []string
	for _, s := range g.All() {
		ids = append(ids, s.ID)
	}
	want := []string{
		"outline",
		"penalty-area-left", "penalty-area-right",
		"goal-area-left", "goal-area-right",
		"center-circle",
		"penalty-arc-left", "penalty-arc-right",
		"center-line",
		"center-spot",
		"penalty-spot-left", "penalty-spot-right",
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}
}

func TestGeometryOnFieldCoordinates(t *testing.T) {
	for _, o := range []Orientation{Horizontal, Vertical} {
		g := NewGeometry(StandardDimensions(), o)
		for _, s := range g.All() {
			var pts []Point
			switch s.Kind {
			case KindRect:
				pts = []Point{Pt(s.X, s.Y), Pt(s.X+s.Width, s.Y+s.Height)}
			case KindLine:
				pts = []Point{Pt(s.X1, s.Y1), Pt(s.X2, s.Y2)}
			case KindCircle, KindArc:
				pts = []Point{Pt(s.CX, s.CY)}
			}
			for _, p := range pts {
				if !p.InField() {
					t.Errorf("%v %s: point %v outside [0,100]", o, s.ID, p)
				}
			}
		}
	}
}
