// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"slices"
	"time"
)

// EventType names an event topic.
type EventType string

// Event names.
const (
	EventInit         EventType = "init"
	EventRender       EventType = "render"
	EventUpdate       EventType = "update"
	EventClear        EventType = "clear"
	EventDestroy      EventType = "destroy"
	EventError        EventType = "error"
	EventLayerAdded   EventType = "layerAdded"
	EventLayerRemoved EventType = "layerRemoved"
)

// InitEvent is emitted after Init succeeds.
type InitEvent struct {
	Container Container
	Config    Config
}

// RenderEvent is emitted after Render with the wall-clock time it took.
type RenderEvent struct {
	Data     []Element
	Duration time.Duration
}

// UpdateEvent is emitted after every Update. Unmatched counts elements that
// carried no id or whose id matched no rendered node.
type UpdateEvent struct {
	Data      []Element
	Matched   int
	Unmatched int
}

// ClearEvent is emitted after Clear.
type ClearEvent struct{}

// DestroyEvent is emitted at the start of Destroy, while subscribers are
// still registered.
type DestroyEvent struct{}

// ErrorEvent reports a backend soft failure that did not abort the call.
type ErrorEvent struct {
	Err error
}

// LayerAddedEvent is emitted after AddLayer.
type LayerAddedEvent struct {
	Layer *Layer
}

// LayerRemovedEvent is emitted after RemoveLayer removed a layer.
type LayerRemovedEvent struct {
	LayerID string
}

// Topic binds an event name to its payload type.
type Topic[P any] struct {
	typ EventType
}

// Type returns the event name.
func (t Topic[P]) Type() EventType { return t.typ }

// Topics for every event a renderer emits.
var (
	TopicInit         = Topic[InitEvent]{EventInit}
	TopicRender       = Topic[RenderEvent]{EventRender}
	TopicUpdate       = Topic[UpdateEvent]{EventUpdate}
	TopicClear        = Topic[ClearEvent]{EventClear}
	TopicDestroy      = Topic[DestroyEvent]{EventDestroy}
	TopicError        = Topic[ErrorEvent]{EventError}
	TopicLayerAdded   = Topic[LayerAddedEvent]{EventLayerAdded}
	TopicLayerRemoved = Topic[LayerRemovedEvent]{EventLayerRemoved}
)

// Subscription identifies one registered handler. The zero Subscription is
// valid and unsubscribes nothing.
type Subscription struct {
	typ EventType
	id  uint64
}

type handler struct {
	id uint64
	fn any
}

// Events is a synchronous publish-subscribe registry keyed by event name.
// The zero value is not usable; call NewEvents.
type Events struct {
	handlers map[EventType][]handler
	nextID   uint64
	closed   bool
}

// NewEvents creates an empty registry.
func NewEvents() *Events {
	return &Events{handlers: make(map[EventType][]handler)}
}

// Subscribe registers fn for topic t. The same function may be registered
// more than once; each registration is invoked. Subscribing to a closed
// registry or with a nil fn registers nothing.
func Subscribe[P any](e *Events, t Topic[P], fn func(P)) Subscription {
	if e == nil || e.closed || fn == nil {
		return Subscription{}
	}
	e.nextID++
	e.handlers[t.typ] = append(e.handlers[t.typ], handler{id: e.nextID, fn: fn})
	return Subscription{typ: t.typ, id: e.nextID}
}

// Unsubscribe removes the handler behind s. Unknown subscriptions are
// ignored.
func (e *Events) Unsubscribe(s Subscription) {
	if e == nil || s.id == 0 {
		return
	}
	hs := e.handlers[s.typ]
	i := slices.IndexFunc(hs, func(h handler) bool { return h.id == s.id })
	if i < 0 {
		return
	}
	e.handlers[s.typ] = slices.Delete(slices.Clone(hs), i, i+1)
}

// Emit delivers payload to every handler registered for t at call time, in
// registration order. Handlers added or removed during dispatch take effect
// from the next Emit.
func Emit[P any](e *Events, t Topic[P], payload P) {
	if e == nil {
		return
	}
	for _, h := range slices.Clone(e.handlers[t.typ]) {
		h.fn.(func(P))(payload)
	}
}

// Count returns the number of handlers registered for the event name.
func (e *Events) Count(typ EventType) int {
	if e == nil {
		return 0
	}
	return len(e.handlers[typ])
}

// Close removes every handler and rejects further subscriptions.
func (e *Events) Close() {
	clear(e.handlers)
	e.closed = true
}

// Observable is implemented by anything that exposes an event registry,
// such as every Renderer.
type Observable interface {
	Events() *Events
}

// On registers fn for topic t on o's registry.
//
//	render.On(r, render.TopicRender, func(e render.RenderEvent) {
//		log.Printf("rendered %d elements in %v", len(e.Data), e.Duration)
//	})
func On[P any](o Observable, t Topic[P], fn func(P)) Subscription {
	return Subscribe(o.Events(), t, fn)
}
