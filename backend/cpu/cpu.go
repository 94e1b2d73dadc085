// Copyright 2025 Aurora QML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the public API for the reference CPU kernel.
package cpu

import (
	"github.com/aurora-qml/aurora/internal/backend/cpu"
	"github.com/aurora-qml/aurora/internal/parallel"
	"github.com/aurora-qml/aurora/internal/statevec"
)

// Backend runs state-vector kernels on host memory.
type Backend = cpu.Backend

// New creates a CPU kernel backend with the default gate set cached.
func New() *Backend {
	return cpu.New()
}

// Sequential returns a parallelism configuration that disables fan-out,
// for use with Backend.SetParallelism inside worker goroutines.
func Sequential() parallel.Config {
	return parallel.Sequential()
}

// Compile-time check that Backend implements statevec.Backend.
var _ statevec.Backend = (*Backend)(nil)
