// Copyright 2025 Aurora QML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package adjoint provides the public API for adjoint-method Jacobians.
//
// Example:
//
//	engine := adjoint.New(cpu.New())
//	tape := circuit.NewTape(
//	    circuit.Operation{Name: "RX", Params: []float64{theta}, Wires: []int{0}},
//	    circuit.Operation{Name: "CNOT", Wires: []int{0, 1}},
//	)
//	obs := []observable.Observable{observable.NewNamed("PauliZ", []int{1})}
//	jac := make([]float64, 1)
//	err := engine.Jacobian(jac, ref, obs, tape, []int{0}, true)
package adjoint

import (
	"github.com/aurora-qml/aurora/internal/adjoint"
	"github.com/aurora-qml/aurora/internal/device"
	"github.com/aurora-qml/aurora/internal/statevec"
)

// Engine evaluates adjoint-method Jacobians on one kernel backend.
type Engine = adjoint.Engine

// Backend is the kernel interface engines run on.
type Backend = statevec.Backend

// Pool is the process-wide registry of devices used by BatchedJacobian.
type Pool = device.Pool

// Sentinel errors for Jacobian computation.
var (
	ErrEmptyTrainableParams = adjoint.ErrEmptyTrainableParams
	ErrMultiParamOp         = adjoint.ErrMultiParamOp
	ErrUnknownGenerator     = adjoint.ErrUnknownGenerator
	ErrJacobianSize         = adjoint.ErrJacobianSize
	ErrBadTrainableParams   = adjoint.ErrBadTrainableParams
)

// New creates an engine on the given kernel backend.
func New(backend Backend) *Engine {
	return adjoint.New(backend)
}

// NewPool creates a device pool holding ids [0, n).
func NewPool(n int) (*Pool, error) {
	return device.NewPool(n)
}
