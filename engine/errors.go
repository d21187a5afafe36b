// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import "errors"

// Errors.
var (
	// ErrNotImplemented is returned by factories for tiers that are
	// registered but have no renderer yet.
	ErrNotImplemented = errors.New("engine: renderer not implemented")

	// ErrNoRenderer is returned when no registered tier could produce a
	// renderer.
	ErrNoRenderer = errors.New("engine: no renderer available")
)

// NotSupportedError is returned when a forced tier is not available on this
// system.
type NotSupportedError struct {
	Type   Type
	Reason string
}

func (e *NotSupportedError) Error() string {
	if e.Reason == "" {
		return "engine: renderer not supported: " + string(e.Type)
	}
	return "engine: renderer not supported: " + string(e.Type) + ": " + e.Reason
}

// UnknownTypeError indicates a type name that is not registered.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return "engine: unknown renderer type: " + e.Name
}
