// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build pitchgpu

package engine

// The gg GPU package registers its accelerator in init, which makes the gpu
// tier report available.
import _ "github.com/gogpu/gg/gpu"
