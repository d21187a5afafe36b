// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview rasterizes a pitch and its event markers to an image with
// gg. It is an export helper, not a render.Renderer: the image is drawn once
// from the same elements the markings package produces for vector
// renderers.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/markings"
	"github.com/gogpu/pitch/render"
)

// DefaultWidth is the output width used when Options.Width is zero.
const DefaultWidth = 1050

// DefaultBackground fills the padding around the field.
const DefaultBackground = "#1b4332"

// ErrInvalidSize is returned when the output would have no pixels.
var ErrInvalidSize = errors.New("preview: invalid image size")

// Options configures Render.
type Options struct {
	// Width is the output width in pixels. The height follows the scale's
	// aspect ratio.
	Width int

	// Background fills the area outside the field.
	Background string
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	return o
}

// Render draws the markings of g and the markers for events. Render units
// of s are scaled uniformly so that s.Size().Width spans opts.Width pixels.
// Invalid events are skipped and reported in the returned error alongside a
// valid image.
func Render(g *pitch.Geometry, s pitch.Scale, th markings.Theme, events []markings.Event, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	size := s.Size()
	if opts.Width < 0 || size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("%w: %d px for %vx%v", ErrInvalidSize, opts.Width, size.Width, size.Height)
	}
	k := float64(opts.Width) / size.Width
	height := int(math.Round(size.Height * k))
	if height < 1 {
		return nil, fmt.Errorf("%w: height rounds to zero", ErrInvalidSize)
	}

	dc := gg.NewContext(opts.Width, height)
	dc.ClearWithColor(gg.Hex(opts.Background))

	arcs := make(map[string]pitch.Shape)
	for _, sh := range g.All() {
		if sh.Kind == pitch.KindArc {
			arcs[sh.ID] = sh
		}
	}
	p := &painter{dc: dc, k: k, scale: s, arcs: arcs}

	var errs []error
	for _, e := range markings.Pitch(g, s, th) {
		if err := p.paint(e); err != nil {
			errs = append(errs, err)
		}
	}
	markers, invalid := markings.Markers(events, s, th)
	for _, e := range markers {
		if err := p.paint(e); err != nil {
			errs = append(errs, err)
		}
	}

	if err := dc.Close(); err != nil {
		errs = append(errs, err)
	}
	img := dc.Image()
	pitch.Logger().Debug("preview rendered", "width", opts.Width, "height", height, "markers", len(markers))
	return img, errors.Join(append(errs, invalid)...)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}

// Thumbnail scales src to width pixels wide, keeping its aspect ratio, with
// Catmull-Rom resampling.
func Thumbnail(src image.Image, width int) (*image.RGBA, error) {
	b := src.Bounds()
	if width <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: thumbnail %d px from %v", ErrInvalidSize, width, b.Size())
	}
	height := max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst, nil
}

// painter draws render-space elements onto a gg context scaled by k.
type painter struct {
	dc    *gg.Context
	k     float64
	scale pitch.Scale
	arcs  map[string]pitch.Shape
}

func (p *painter) paint(e render.Element) error {
	if fill := attr(e, "fill"); fill != "" && fill != "none" {
		p.dc.SetHexColor(fill)
		if p.path(e) {
			if err := p.dc.Fill(); err != nil {
				return fmt.Errorf("preview: fill %s: %w", e.ID(), err)
			}
		}
	}
	if stroke := attr(e, "stroke"); stroke != "" && stroke != "none" {
		w, err := strconv.ParseFloat(attr(e, "stroke-width"), 64)
		if err != nil {
			w = 1
		}
		p.dc.SetHexColor(stroke)
		p.dc.SetLineWidth(w * p.k)
		if p.path(e) {
			if err := p.dc.Stroke(); err != nil {
				return fmt.Errorf("preview: stroke %s: %w", e.ID(), err)
			}
		}
	}
	return nil
}

// path builds the outline of e in pixels. It reports false when e has
// nothing to draw.
func (p *painter) path(e render.Element) bool {
	k := p.k
	switch e.Type {
	case render.Circle:
		if e.X == nil || e.Y == nil || e.Radius == nil {
			return false
		}
		p.dc.DrawCircle(*e.X*k, *e.Y*k, *e.Radius*k)
	case render.Rect:
		if e.X == nil || e.Y == nil || e.Width == nil || e.Height == nil {
			return false
		}
		p.dc.DrawRectangle(*e.X*k, *e.Y*k, *e.Width*k, *e.Height*k)
	case render.Line:
		if e.X == nil || e.Y == nil || e.X2 == nil || e.Y2 == nil {
			return false
		}
		p.dc.DrawLine(*e.X*k, *e.Y*k, *e.X2*k, *e.Y2*k)
	case render.Path:
		sh, ok := p.arcs[e.ID()]
		if !ok {
			return false
		}
		c := p.scale.ToPixel(pitch.Pt(sh.CX, sh.CY))
		r := sh.R / 100 * p.scale.LongAxis()
		p.dc.NewSubPath()
		p.dc.DrawArc(c.X*k, c.Y*k, r*k, sh.StartAngle, sh.EndAngle)
	default:
		return false
	}
	return true
}

func attr(e render.Element, name string) string {
	v, ok := e.Attributes[name]
	if !ok || v == nil {
		return ""
	}
	return render.FormatValue(v)
}
