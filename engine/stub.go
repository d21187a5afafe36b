// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"fmt"

	"github.com/gogpu/pitch/render"
)

// stub returns a factory for a tier that is detected but not implemented.
// Keeping the tier registered lets Detect report it and lets selection fall
// back past it.
func stub(t Type) Factory {
	return func() (render.Renderer, error) {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, t)
	}
}
