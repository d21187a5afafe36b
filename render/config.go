// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Config is passed to Init. Zero values select the documented defaults.
type Config struct {
	// Width and Height set the viewport in user units. Backends default a
	// zero value to 100.
	Width, Height float64

	// Fixed uses Width and Height as the output size in pixels. By default
	// the surface fills its container and scales the viewport responsively.
	Fixed bool

	// PreserveAspectRatio controls viewport scaling. Backends default the
	// empty string to "xMidYMid meet".
	PreserveAspectRatio string

	// Background is an optional fill painted behind every layer.
	Background string

	// ClassName is added to the root surface node.
	ClassName string
}

// DefaultViewport is the viewport extent used for zero Width or Height.
const DefaultViewport = 100

// Viewport returns Width and Height with zero values replaced by
// DefaultViewport.
func (c Config) Viewport() (width, height float64) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = DefaultViewport
	}
	if height == 0 {
		height = DefaultViewport
	}
	return width, height
}

// Capabilities describes what a backend can do. It is static per backend.
type Capabilities struct {
	// Vector reports a resolution-independent retained scene.
	Vector bool

	// GPU reports hardware-accelerated drawing.
	GPU bool

	// Animations reports support for timed Update transitions.
	Animations bool

	// Interactivity reports that rendered nodes can carry pointer handlers.
	Interactivity bool

	// PartialUpdates reports support for Update by element id.
	PartialUpdates bool

	// MaxElements is the practical element limit (0 = unlimited).
	MaxElements int

	// ExportFormats lists the formats the surface can be serialized to.
	ExportFormats []string
}

// RenderOptions configures a Render call.
type RenderOptions struct {
	// Layer names the target layer. When it does not resolve, elements are
	// added to the surface root.
	Layer string

	// Clear empties the resolved target layer before drawing.
	Clear bool
}
