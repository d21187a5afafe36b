// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the layered renderer contract shared by every
// drawing backend.
//
// # Key Principle
//
// The backend-independent parts of a renderer (lifecycle state, container
// validation, the layer registry and the event bus) live in [Base]. A concrete
// renderer embeds *Base, injects a [Backend] that creates its drawing surface
// and layer nodes, and implements only Render and Update.
//
// # Lifecycle
//
//	Uninitialized --Init--> Initialized --Destroy--> Destroyed
//
// Destroyed is terminal. Every operation other than Init fails with
// [ErrNotInitialized] or degrades to a nil/empty result until Init succeeds.
//
// # Events
//
// Events are typed topics. Handlers run synchronously, in registration order,
// during the call that triggers them:
//
//	sub := render.On(r, render.TopicLayerAdded, func(e render.LayerAddedEvent) {
//		log.Printf("layer %s added", e.Layer.ID())
//	})
//	defer r.Off(sub)
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine. Handlers must not remove the layer that is currently being
// rendered from inside a render handler; the resulting layer state is
// undefined.
package render
