// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/dom"
	"github.com/gogpu/pitch/render"
)

var tags = map[render.ElementType]string{
	render.Circle: "circle",
	render.Rect:   "rect",
	render.Line:   "line",
	render.Path:   "path",
	render.Text:   "text",
	render.Group:  "g",
}

// build converts e and its children to a detached node. It returns nil for
// element types the SVG surface does not know.
func build(e render.Element) *dom.Element {
	tag, ok := tags[e.Type]
	if !ok {
		pitch.Logger().Debug("svg: skipping unknown element type", "type", e.Type)
		return nil
	}
	n := dom.NewElement(tag)
	for _, a := range positionAttrs(tag, e) {
		n.SetAttr(a.Name, a.Value)
	}
	for _, k := range e.Attributes.Keys() {
		if v := e.Attributes[k]; v != nil {
			n.SetAttr(k, render.FormatValue(v))
		}
	}
	if tag == "text" && e.Text != "" {
		n.SetText(e.Text)
	}
	if tag == "g" {
		for _, c := range e.Children {
			if cn := build(c); cn != nil {
				n.AppendChild(cn)
			}
		}
	}
	return n
}

// positionAttrs maps the set position fields of e to the attribute names of
// tag. Unset fields produce nothing.
func positionAttrs(tag string, e render.Element) []dom.Attr {
	var out []dom.Attr
	add := func(name string, v *float64) {
		if v != nil {
			out = append(out, dom.Attr{Name: name, Value: formatFloat(*v)})
		}
	}
	switch tag {
	case "circle":
		add("cx", e.X)
		add("cy", e.Y)
		add("r", e.Radius)
	case "rect":
		add("x", e.X)
		add("y", e.Y)
		add("width", e.Width)
		add("height", e.Height)
	case "line":
		add("x1", e.X)
		add("y1", e.Y)
		add("x2", e.X2)
		add("y2", e.Y2)
	case "text":
		add("x", e.X)
		add("y", e.Y)
	case "g":
		if e.X != nil || e.Y != nil {
			var x, y float64
			if e.X != nil {
				x = *e.X
			}
			if e.Y != nil {
				y = *e.Y
			}
			out = append(out, dom.Attr{Name: "transform", Value: "translate(" + formatFloat(x) + " " + formatFloat(y) + ")"})
		}
	}
	return out
}
