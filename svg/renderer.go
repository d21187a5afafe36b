// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/dom"
	"github.com/gogpu/pitch/internal/ease"
	"github.com/gogpu/pitch/render"
)

// Renderer draws render.Elements into an SVG document tree.
type Renderer struct {
	*render.Base
	surface *surface
}

var _ render.Renderer = (*Renderer)(nil)

// New returns an uninitialized SVG renderer with a fresh instance id.
func New() *Renderer {
	s := newSurface()
	return &Renderer{Base: render.NewBase(s), surface: s}
}

// ID returns the instance id written to the root's data-renderer-id.
func (r *Renderer) ID() string { return r.surface.id }

// Document returns the <svg> root, or nil when the renderer is not
// initialized.
func (r *Renderer) Document() *dom.Element {
	if !r.Initialized() {
		return nil
	}
	return r.surface.root
}

// WriteTo serializes the <svg> root as XML.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	if err := r.CheckInitialized("exporting"); err != nil {
		return 0, err
	}
	return r.surface.root.WriteTo(w)
}

// Render converts data to SVG nodes and appends them to the layer named in
// opts, or to the root when opts is nil or the layer does not exist.
// Unknown element types are skipped.
func (r *Renderer) Render(data []render.Element, opts *render.RenderOptions) error {
	if err := r.CheckInitialized("rendering"); err != nil {
		return err
	}
	start := time.Now()

	target := r.surface.root
	if opts != nil && opts.Layer != "" {
		if l := r.Layer(opts.Layer); l != nil {
			if opts.Clear {
				l.Clear()
			}
			target = l.Content().(*layerGroup).node
		} else {
			pitch.Logger().Debug("svg: layer not found, rendering to root", "layer", opts.Layer)
		}
	}

	for _, e := range data {
		if n := build(e); n != nil {
			target.AppendChild(n)
		}
	}

	render.Emit(r.Events(), render.TopicRender, render.RenderEvent{Data: data, Duration: time.Since(start)})
	return nil
}

// Update applies the position fields, attributes and text of each element to
// the rendered node whose id matches the element's id attribute. Elements
// without an id, or whose id matches nothing, are counted as unmatched and
// otherwise ignored.
//
// With a non-zero transition, every numeric attribute that changes gets an
// <animate> child carrying keyframes sampled from the transition's easing
// curve. An unknown easing name falls back to linear and emits an error
// event.
func (r *Renderer) Update(data []render.Element, tr *render.Transition) error {
	if err := r.CheckInitialized("updating"); err != nil {
		return err
	}

	var curve ease.Func
	animate := tr != nil && tr.Duration > 0
	if animate {
		fn, ok := ease.Lookup(tr.Easing)
		if !ok {
			r.ReportError(fmt.Errorf("svg: unknown easing %q, using linear", tr.Easing))
		}
		curve = fn
	}

	matched := 0
	for _, e := range data {
		id := e.ID()
		if id == "" {
			continue
		}
		n := r.surface.root.ElementByID(id)
		if n == nil {
			continue
		}
		matched++
		apply(n, e, tr, curve, animate)
	}

	render.Emit(r.Events(), render.TopicUpdate, render.UpdateEvent{
		Data:      data,
		Matched:   matched,
		Unmatched: len(data) - matched,
	})
	return nil
}

// Destroy detaches the <svg> root from its container and tears down the
// renderer.
func (r *Renderer) Destroy() {
	if r.Destroyed() {
		return
	}
	r.surface.detach()
	r.Base.Destroy()
}

func apply(n *dom.Element, e render.Element, tr *render.Transition, curve ease.Func, animate bool) {
	attrs := positionAttrs(n.Tag(), e)
	for _, k := range e.Attributes.Keys() {
		if k == "id" {
			continue
		}
		if v := e.Attributes[k]; v != nil {
			attrs = append(attrs, dom.Attr{Name: k, Value: render.FormatValue(v)})
		}
	}

	for _, a := range attrs {
		if animate {
			if old, ok := n.Attr(a.Name); ok && old != a.Value {
				from, errFrom := strconv.ParseFloat(old, 64)
				to, errTo := strconv.ParseFloat(a.Value, 64)
				if errFrom == nil && errTo == nil {
					setAnimation(n, a.Name, from, to, tr, curve)
				}
			}
		}
		n.SetAttr(a.Name, a.Value)
	}
	if e.Text != "" && n.Tag() == "text" {
		n.SetText(e.Text)
	}
}

// setAnimation replaces any previous <animate> for attr on n.
func setAnimation(n *dom.Element, attr string, from, to float64, tr *render.Transition, curve ease.Func) {
	for _, c := range n.Children() {
		if c.Tag() == "animate" && c.AttrOr("attributeName", "") == attr {
			c.Remove()
		}
	}
	a := dom.NewElement("animate").
		SetAttr("attributeName", attr).
		SetAttr("dur", seconds(tr.Duration)).
		SetAttr("values", joinFloats(ease.Sample(curve, from, to, ease.DefaultSteps))).
		SetAttr("keyTimes", joinFloats(ease.KeyTimes(ease.DefaultSteps))).
		SetAttr("fill", "freeze")
	if tr.Delay > 0 {
		a.SetAttr("begin", seconds(tr.Delay))
	}
	n.AppendChild(a)
}

func seconds(d time.Duration) string {
	return formatFloat(d.Seconds()) + "s"
}

// joinFloats formats keyframes rounded to 1/1000 of a user unit. The easing
// curves compute in float32.
func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(math.Round(v*1000) / 1000)
	}
	return strings.Join(parts, ";")
}
