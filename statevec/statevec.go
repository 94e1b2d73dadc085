// Copyright 2025 Aurora QML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package statevec provides the public API for state-vector simulation in
// the Aurora framework.
//
// A StateVector is a dense complex amplitude buffer of length 2^n tied to
// one device. Kernels run through a pluggable Backend:
//
//	kernel := cpu.New()
//	sv := statevec.New(2, kernel, device.Tag{})
//	_ = sv.ApplyOperation("Hadamard", []int{0}, false, nil)
package statevec

import (
	"github.com/aurora-qml/aurora/internal/device"
	"github.com/aurora-qml/aurora/internal/statevec"
)

// StateVector is a device-tagged amplitude buffer with exclusive ownership.
type StateVector = statevec.StateVector

// Backend is the kernel interface compute devices implement.
type Backend = statevec.Backend

// Tag identifies the device and stream a buffer lives on.
type Tag = device.Tag

// Sentinel errors for state-vector operations.
var (
	ErrDeviceMismatch = statevec.ErrDeviceMismatch
	ErrLengthMismatch = statevec.ErrLengthMismatch
	ErrUnknownGate    = statevec.ErrUnknownGate
	ErrInvalidLength  = statevec.ErrInvalidLength
	ErrBadMatrix      = statevec.ErrBadMatrix
	ErrWireOutOfRange = statevec.ErrWireOutOfRange
)

// New creates the n-qubit basis state |0...0>.
func New(nq int, b Backend, tag Tag) *StateVector {
	return statevec.New(nq, b, tag)
}

// Zeros creates an n-qubit buffer with every amplitude zero.
func Zeros(nq int, b Backend, tag Tag) *StateVector {
	return statevec.Zeros(nq, b, tag)
}

// FromData copies an amplitude buffer (length 2^n) onto a device.
func FromData(data []complex128, b Backend, tag Tag) (*StateVector, error) {
	return statevec.FromData(data, b, tag)
}
