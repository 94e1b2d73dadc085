// Copyright 2025 Aurora QML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the public API for the GPU kernel backend.
//
// The backend runs gate application as WGSL compute shaders through
// go-webgpu. Availability depends on the wgpu native library and a
// compatible adapter; probe with IsAvailable before constructing.
package webgpu

import (
	"github.com/aurora-qml/aurora/internal/backend/webgpu"
	"github.com/aurora-qml/aurora/internal/statevec"
)

// Backend runs state-vector kernels on a WebGPU device.
type Backend = webgpu.Backend

// New creates a WebGPU kernel backend, or an error when no compatible
// device is present.
func New() (*Backend, error) {
	return webgpu.New()
}

// IsAvailable reports whether a compatible GPU and drivers are present.
func IsAvailable() bool {
	return webgpu.IsAvailable()
}

// Compile-time check that Backend implements statevec.Backend.
var _ statevec.Backend = (*Backend)(nil)
