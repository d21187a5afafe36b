// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Precondition errors. They are returned synchronously and never retried.
var (
	// ErrNotInitialized is returned when an operation other than Init is
	// called before Init succeeded or after Destroy.
	ErrNotInitialized = errors.New("render: renderer not initialized")

	// ErrNilContainer is returned by Init for a nil container.
	ErrNilContainer = errors.New("render: container is nil")

	// ErrDetachedContainer is returned by Init when the container is not
	// attached to a live document tree.
	ErrDetachedContainer = errors.New("render: container is not attached to a document")

	// ErrDestroyed is returned by Init on a destroyed renderer. Renderers
	// are not reusable.
	ErrDestroyed = errors.New("render: renderer destroyed")

	// ErrLayerExists is returned by AddLayer for an id already in use.
	ErrLayerExists = errors.New("render: layer already exists")
)

// ErrAlreadyInitialized is returned by Init on a renderer that is already
// initialized.
var ErrAlreadyInitialized = errors.New("render: renderer already initialized")
