// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"math"
	"slices"
)

// LayerContent is the backend node that holds a layer's drawn content.
// Backends return one from Backend.CreateLayer.
type LayerContent interface {
	// Clear removes all drawn content but keeps the node in place.
	Clear()

	// SetVisible shows or hides the node without discarding content.
	SetVisible(visible bool)

	// SetOpacity sets the node opacity in [0, 1].
	SetOpacity(opacity float64)

	// Remove detaches the node from the surface.
	Remove()
}

// Layer is a named, z-ordered group of rendered content. Layers are created
// by Renderer.AddLayer and are rendered in ascending ZIndex order (lower
// values behind higher ones).
type Layer struct {
	id      string
	zIndex  int
	visible bool
	opacity float64
	seq     uint64
	content LayerContent
}

func newLayer(id string, zIndex int, seq uint64, content LayerContent) *Layer {
	return &Layer{
		id:      id,
		zIndex:  zIndex,
		visible: true,
		opacity: 1,
		seq:     seq,
		content: content,
	}
}

// ID returns the layer id, unique within its renderer.
func (l *Layer) ID() string { return l.id }

// ZIndex returns the paint order key.
func (l *Layer) ZIndex() int { return l.zIndex }

// Visible reports whether the layer is shown.
func (l *Layer) Visible() bool { return l.visible }

// Opacity returns the layer opacity in [0, 1].
func (l *Layer) Opacity() float64 { return l.opacity }

// Content returns the backend node. Concrete renderers type-assert it to
// their own node type.
func (l *Layer) Content() LayerContent { return l.content }

// Show makes the layer visible.
func (l *Layer) Show() {
	l.visible = true
	if l.content != nil {
		l.content.SetVisible(true)
	}
}

// Hide hides the layer without discarding its content.
func (l *Layer) Hide() {
	l.visible = false
	if l.content != nil {
		l.content.SetVisible(false)
	}
}

// SetOpacity sets the layer opacity, clamped to [0, 1]. NaN is treated as 0.
func (l *Layer) SetOpacity(opacity float64) {
	if math.IsNaN(opacity) {
		opacity = 0
	}
	l.opacity = min(max(opacity, 0), 1)
	if l.content != nil {
		l.content.SetOpacity(l.opacity)
	}
}

// Clear removes the layer's drawn content and keeps the layer registered.
func (l *Layer) Clear() {
	if l.content != nil {
		l.content.Clear()
	}
}

// sortLayers orders layers by ascending z-index. Equal z-indexes keep
// insertion order.
func sortLayers(layers []*Layer) {
	slices.SortStableFunc(layers, func(a, b *Layer) int {
		if c := cmp.Compare(a.zIndex, b.zIndex); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
}
