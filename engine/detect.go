// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/pitch"
)

// rasterAvailable reports whether a gg CPU context can be created. The
// result is computed once.
var rasterAvailable = sync.OnceValue(func() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			pitch.Logger().Warn("raster probe failed", "panic", r)
			ok = false
		}
	}()
	dc := gg.NewContext(1, 1)
	if dc == nil {
		return false
	}
	if err := dc.Close(); err != nil {
		pitch.Logger().Debug("raster probe close", "err", err)
	}
	return true
})

// gpuAvailable reports whether a gg GPU accelerator that can fill paths is
// registered. Without the pitchgpu build tag nothing registers one.
func gpuAvailable() bool {
	a := gg.Accelerator()
	return a != nil && a.CanAccelerate(gg.AccelFill)
}
