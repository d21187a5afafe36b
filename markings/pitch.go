// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package markings

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/render"
)

// Pitch converts every marking of g to render-space elements using s. Each
// element carries the shape id as its id attribute. Empty penalty arcs are
// omitted.
func Pitch(g *pitch.Geometry, s pitch.Scale, th Theme) []render.Element {
	shapes := g.All()
	out := make([]render.Element, 0, len(shapes))
	for _, sh := range shapes {
		e, ok := Shape(sh, s)
		if !ok {
			continue
		}
		out = append(out, style(sh, e, th))
	}
	return out
}

// Shape converts one normalized shape to an unstyled render-space element.
// It reports false for shapes with nothing to draw.
func Shape(sh pitch.Shape, s pitch.Scale) (render.Element, bool) {
	var e render.Element
	switch sh.Kind {
	case pitch.KindRect:
		p := s.ToPixel(pitch.Pt(sh.X, sh.Y))
		e = render.NewRect(p.X, p.Y, sh.Width/100*s.Dimensions.Width, sh.Height/100*s.Dimensions.Height)
	case pitch.KindLine:
		a := s.ToPixel(pitch.Pt(sh.X1, sh.Y1))
		b := s.ToPixel(pitch.Pt(sh.X2, sh.Y2))
		e = render.NewLine(a.X, a.Y, b.X, b.Y)
	case pitch.KindCircle:
		c := s.ToPixel(pitch.Pt(sh.CX, sh.CY))
		e = render.NewCircle(c.X, c.Y, radius(sh.R, s))
	case pitch.KindArc:
		if sh.EndAngle == sh.StartAngle {
			return render.Element{}, false
		}
		e = render.NewPath(ArcPath(s.ToPixel(pitch.Pt(sh.CX, sh.CY)), radius(sh.R, s), sh.StartAngle, sh.EndAngle))
	default:
		return render.Element{}, false
	}
	return e.With("id", sh.ID), true
}

func style(sh pitch.Shape, e render.Element, th Theme) render.Element {
	fill := "none"
	switch {
	case sh.ID == "outline" && th.PitchFill != "":
		fill = th.PitchFill
	case sh.ID == "center-spot" || strings.HasPrefix(sh.ID, "penalty-spot-"):
		fill = th.LineColor
	}
	return e.With("fill", fill).
		With("stroke", th.LineColor).
		With("stroke-width", th.LineWidth)
}

// radius converts a radius normalized against the long axis to render units.
func radius(r float64, s pitch.Scale) float64 {
	return r / 100 * s.LongAxis()
}

// ArcPath returns SVG path data for the arc of radius r around c from angle
// start to end, in radians, drawn in the direction of increasing angle.
func ArcPath(c pitch.Point, r, start, end float64) string {
	sx, sy := c.X+r*math.Cos(start), c.Y+r*math.Sin(start)
	ex, ey := c.X+r*math.Cos(end), c.Y+r*math.Sin(end)
	large := "0"
	if end-start > math.Pi {
		large = "1"
	}
	rs := num(r)
	return "M" + num(sx) + " " + num(sy) +
		" A" + rs + " " + rs + " 0 " + large + " 1 " + num(ex) + " " + num(ey)
}

// num formats v rounded to 1/1000 of a render unit.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
