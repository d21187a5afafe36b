// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/gogpu/pitch/dom"
	"github.com/gogpu/pitch/render"
)

// Namespace is the SVG XML namespace written on the root element.
const Namespace = "http://www.w3.org/2000/svg"

// DefaultPreserveAspectRatio is used when Config.PreserveAspectRatio is empty.
const DefaultPreserveAspectRatio = "xMidYMid meet"

// ErrUnsupportedContainer is returned by Init when the container is not a
// *dom.Element.
var ErrUnsupportedContainer = errors.New("svg: container must be a *dom.Element")

// surface is the render.Backend half of the SVG renderer. It owns the <svg>
// root node.
type surface struct {
	id        string
	container *dom.Element
	root      *dom.Element
}

func newSurface() *surface {
	return &surface{id: uuid.NewString()}
}

func (s *surface) Name() string { return "svg" }

func (s *surface) Capabilities() render.Capabilities {
	return render.Capabilities{
		Vector:         true,
		Animations:     true,
		Interactivity:  true,
		PartialUpdates: true,
		MaxElements:    10000,
		ExportFormats:  []string{"svg"},
	}
}

func (s *surface) CreateContext(container render.Container, cfg render.Config) error {
	host, ok := container.(*dom.Element)
	if !ok {
		return fmt.Errorf("%w, got %T", ErrUnsupportedContainer, container)
	}

	root := dom.NewElement("svg").
		SetAttr("xmlns", Namespace).
		SetAttr("data-renderer-id", s.id)
	applyViewport(root, cfg)
	par := cfg.PreserveAspectRatio
	if par == "" {
		par = DefaultPreserveAspectRatio
	}
	root.SetAttr("preserveAspectRatio", par)
	if cfg.ClassName != "" {
		root.SetAttr("class", cfg.ClassName)
	}
	if cfg.Background != "" {
		w, h := cfg.Viewport()
		root.AppendChild(dom.NewElement("rect").
			SetAttr("data-background", "").
			SetAttr("x", "0").
			SetAttr("y", "0").
			SetAttr("width", formatFloat(w)).
			SetAttr("height", formatFloat(h)).
			SetAttr("fill", cfg.Background))
	}

	host.AppendChild(root)
	s.container = host
	s.root = root
	return nil
}

// Resize rewrites the viewBox and, for fixed-size surfaces, the output size.
func (s *surface) Resize(cfg render.Config) {
	if s.root == nil {
		return
	}
	applyViewport(s.root, cfg)
}

func applyViewport(root *dom.Element, cfg render.Config) {
	w, h := cfg.Viewport()
	root.SetAttr("viewBox", "0 0 "+formatFloat(w)+" "+formatFloat(h))
	if cfg.Fixed {
		root.SetAttr("width", formatFloat(w))
		root.SetAttr("height", formatFloat(h))
		return
	}
	root.SetAttr("width", "100%")
	root.SetAttr("height", "100%")
}

func (s *surface) CreateLayer(id string, zIndex int) (render.LayerContent, error) {
	if s.root == nil {
		return nil, render.ErrNotInitialized
	}
	g := dom.NewElement("g").
		SetAttr("data-layer", id).
		SetAttr("data-z-index", strconv.Itoa(zIndex))
	s.root.InsertBefore(g, s.firstLayerAbove(zIndex))
	return &layerGroup{node: g}, nil
}

// firstLayerAbove returns the first layer group whose z-index is strictly
// greater than z, or nil.
func (s *surface) firstLayerAbove(z int) *dom.Element {
	for _, c := range s.root.Children() {
		if _, ok := c.Attr("data-layer"); !ok {
			continue
		}
		cz, err := strconv.Atoi(c.AttrOr("data-z-index", "0"))
		if err != nil {
			continue
		}
		if cz > z {
			return c
		}
	}
	return nil
}

func (s *surface) detach() {
	if s.root != nil {
		s.root.Remove()
	}
	s.root = nil
	s.container = nil
}

// layerGroup is the <g> node behind a render.Layer.
type layerGroup struct {
	node *dom.Element
}

func (l *layerGroup) Clear() { l.node.RemoveChildren() }

func (l *layerGroup) SetVisible(visible bool) {
	if visible {
		l.node.RemoveAttr("display")
		return
	}
	l.node.SetAttr("display", "none")
}

func (l *layerGroup) SetOpacity(opacity float64) {
	if opacity == 1 {
		l.node.RemoveAttr("opacity")
		return
	}
	l.node.SetAttr("opacity", formatFloat(opacity))
}

func (l *layerGroup) Remove() { l.node.Remove() }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
