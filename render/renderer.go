// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"reflect"
	"time"

	"github.com/gogpu/pitch"
)

// Container is the host node a renderer attaches its surface to.
type Container interface {
	// IsConnected reports whether the node is attached to a live document.
	IsConnected() bool
}

// Transition is a timing hint for Update. Backends that support animation
// interpolate changed attributes over Duration using the named easing.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration

	// Easing names the interpolation curve, for example "linear",
	// "ease-in-out" or "out-bounce". Empty means linear.
	Easing string
}

// Renderer is the integration contract for chart components.
//
// Every method except Init requires an initialized renderer. Render and
// Update return ErrNotInitialized otherwise; query methods return nil or
// empty results.
type Renderer interface {
	Observable

	// Name returns the backend identifier, e.g. "svg".
	Name() string

	// Capabilities returns the backend's static feature set.
	Capabilities() Capabilities

	// Init attaches the renderer to container and creates the surface.
	Init(container Container, cfg Config) error

	// Initialized reports whether Init succeeded and Destroy was not called.
	Initialized() bool

	// Render converts data to surface nodes.
	Render(data []Element, opts *RenderOptions) error

	// Update mutates previously rendered nodes matched by id.
	Update(data []Element, tr *Transition) error

	// Clear empties every layer, keeping the layer structure.
	Clear()

	// Destroy tears the renderer down. The instance is not reusable.
	Destroy()

	// AddLayer creates a layer painted in ascending zIndex order.
	AddLayer(id string, zIndex int) (*Layer, error)

	// Layer returns the layer with id, or nil.
	Layer(id string) *Layer

	// Layers returns all layers sorted by ascending zIndex.
	Layers() []*Layer

	// RemoveLayer removes the layer with id. Unknown ids are ignored.
	RemoveLayer(id string)

	// Resize stores new viewport dimensions without re-rendering.
	Resize(width, height float64)

	// Container returns the attached container, or nil.
	Container() Container

	// Config returns the configuration passed to Init.
	Config() Config

	// Off removes a handler registered with On.
	Off(sub Subscription)
}

// Backend is the surface-specific hook a concrete renderer injects into
// Base.
type Backend interface {
	// Name returns the backend identifier.
	Name() string

	// Capabilities returns the backend's static feature set.
	Capabilities() Capabilities

	// CreateContext builds the root drawing surface inside container.
	CreateContext(container Container, cfg Config) error

	// CreateLayer creates and inserts the node for a new layer so that
	// layer nodes stay in ascending zIndex order.
	CreateLayer(id string, zIndex int) (LayerContent, error)
}

// Resizer is implemented by backends that react to Resize beyond storing
// the new dimensions.
type Resizer interface {
	Resize(cfg Config)
}

type state int

const (
	stateUninitialized state = iota
	stateInitialized
	stateDestroyed
)

// Base implements the backend-independent part of Renderer: lifecycle
// state, container validation, the layer registry and the event bus.
// Concrete renderers embed *Base and add Render and Update.
type Base struct {
	backend   Backend
	state     state
	container Container
	config    Config
	layers    map[string]*Layer
	seq       uint64
	events    *Events
}

// NewBase creates an uninitialized Base delegating surface work to backend.
func NewBase(backend Backend) *Base {
	return &Base{
		backend: backend,
		layers:  make(map[string]*Layer),
		events:  NewEvents(),
	}
}

// Name returns the backend identifier.
func (b *Base) Name() string { return b.backend.Name() }

// Capabilities returns the backend's static feature set.
func (b *Base) Capabilities() Capabilities { return b.backend.Capabilities() }

// Events returns the renderer's event registry.
func (b *Base) Events() *Events { return b.events }

// Off removes a handler registered with On. Unknown subscriptions are
// ignored.
func (b *Base) Off(sub Subscription) { b.events.Unsubscribe(sub) }

// Initialized reports whether Init succeeded and Destroy was not called.
func (b *Base) Initialized() bool { return b.state == stateInitialized }

// Destroyed reports whether Destroy was called.
func (b *Base) Destroyed() bool { return b.state == stateDestroyed }

// Init validates container, creates the backend context and emits an init
// event.
func (b *Base) Init(container Container, cfg Config) error {
	switch b.state {
	case stateDestroyed:
		return ErrDestroyed
	case stateInitialized:
		return ErrAlreadyInitialized
	}
	if isNil(container) {
		return ErrNilContainer
	}
	if !container.IsConnected() {
		return ErrDetachedContainer
	}

	if err := b.backend.CreateContext(container, cfg); err != nil {
		return fmt.Errorf("render: %s: create context: %w", b.backend.Name(), err)
	}
	b.container = container
	b.config = cfg
	b.state = stateInitialized

	pitch.Logger().Debug("renderer initialized", "backend", b.backend.Name())
	Emit(b.events, TopicInit, InitEvent{Container: container, Config: cfg})
	return nil
}

// CheckInitialized returns ErrNotInitialized wrapped with the attempted
// action unless the renderer is initialized.
//
//	if err := r.CheckInitialized("rendering"); err != nil {
//		return err
//	}
func (b *Base) CheckInitialized(action string) error {
	if b.state != stateInitialized {
		return fmt.Errorf("%w: renderer must be initialized before %s", ErrNotInitialized, action)
	}
	return nil
}

// Container returns the attached container, or nil before Init and after
// Destroy.
func (b *Base) Container() Container { return b.container }

// Config returns the configuration passed to Init, updated by Resize.
func (b *Base) Config() Config { return b.config }

// Clear empties every layer and emits a clear event. It does nothing on a
// renderer that is not initialized.
func (b *Base) Clear() {
	if b.state != stateInitialized {
		return
	}
	for _, l := range b.layers {
		l.Clear()
	}
	Emit(b.events, TopicClear, ClearEvent{})
}

// Destroy emits a destroy event, removes every layer, drops all
// subscriptions and marks the renderer destroyed. Calling it again is a
// no-op.
func (b *Base) Destroy() {
	if b.state == stateDestroyed {
		return
	}
	Emit(b.events, TopicDestroy, DestroyEvent{})

	for id, l := range b.layers {
		l.Clear()
		if l.content != nil {
			l.content.Remove()
		}
		delete(b.layers, id)
	}
	b.events.Close()
	b.container = nil
	b.config = Config{}
	b.state = stateDestroyed

	pitch.Logger().Debug("renderer destroyed", "backend", b.backend.Name())
}

// AddLayer creates a layer with the given id and z-index and emits a
// layerAdded event.
func (b *Base) AddLayer(id string, zIndex int) (*Layer, error) {
	if err := b.CheckInitialized("adding layers"); err != nil {
		return nil, err
	}
	if _, ok := b.layers[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrLayerExists, id)
	}

	content, err := b.backend.CreateLayer(id, zIndex)
	if err != nil {
		return nil, fmt.Errorf("render: %s: create layer %q: %w", b.backend.Name(), id, err)
	}
	b.seq++
	l := newLayer(id, zIndex, b.seq, content)
	b.layers[id] = l

	pitch.Logger().Debug("layer added", "backend", b.backend.Name(), "layer", id, "zIndex", zIndex)
	Emit(b.events, TopicLayerAdded, LayerAddedEvent{Layer: l})
	return l, nil
}

// Layer returns the layer with id, or nil.
func (b *Base) Layer(id string) *Layer {
	return b.layers[id]
}

// Layers returns all layers sorted by ascending z-index. Layers with equal
// z-index keep insertion order. The returned slice is a copy.
func (b *Base) Layers() []*Layer {
	out := make([]*Layer, 0, len(b.layers))
	for _, l := range b.layers {
		out = append(out, l)
	}
	sortLayers(out)
	return out
}

// RemoveLayer detaches and forgets the layer with id, then emits a
// layerRemoved event. Unknown ids are ignored.
func (b *Base) RemoveLayer(id string) {
	l, ok := b.layers[id]
	if !ok {
		return
	}
	if l.content != nil {
		l.content.Remove()
	}
	delete(b.layers, id)

	pitch.Logger().Debug("layer removed", "backend", b.backend.Name(), "layer", id)
	Emit(b.events, TopicLayerRemoved, LayerRemovedEvent{LayerID: id})
}

// Resize stores the new viewport dimensions. It does not re-render; callers
// render again when they need the new size applied to content. Backends
// implementing Resizer are notified.
func (b *Base) Resize(width, height float64) {
	if b.state != stateInitialized {
		return
	}
	b.config.Width = width
	b.config.Height = height
	if r, ok := b.backend.(Resizer); ok {
		r.Resize(b.config)
	}
}

// ReportError emits an error event for a soft backend failure and logs it.
func (b *Base) ReportError(err error) {
	pitch.Logger().Warn("renderer error", "backend", b.backend.Name(), "err", err)
	Emit(b.events, TopicError, ErrorEvent{Err: err})
}

func isNil(c Container) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
