// Copyright 2025 Aurora QML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package observable provides the public API for measurement operators.
//
// Four immutable variants are supported:
//
//	z := observable.NewNamed("PauliZ", []int{0})
//	h := observable.NewHermitian(matrix, []int{1})
//	tp, err := observable.NewTensorProd(z, h)
//	ham, err := observable.NewHamiltonian([]float64{0.5, 0.5}, []observable.Observable{z, h})
package observable

import (
	"github.com/aurora-qml/aurora/internal/observable"
)

// Observable is a measurement operator applied to state-vector copies.
type Observable = observable.Observable

// Named models named observables (PauliX, PauliY, PauliZ, ...).
type Named = observable.Named

// Hermitian models an observable given as a dense row-major matrix.
type Hermitian = observable.Hermitian

// TensorProd is a tensor product of sub-observables on disjoint wires.
type TensorProd = observable.TensorProd

// Hamiltonian is a real-weighted sum of sub-observables.
type Hamiltonian = observable.Hamiltonian

// Configuration errors raised during construction.
var (
	ErrOverlappingWires  = observable.ErrOverlappingWires
	ErrCoeffTermMismatch = observable.ErrCoeffTermMismatch
)

// NewNamed creates a named observable on the given wires.
func NewNamed(name string, wires []int, params ...float64) *Named {
	return observable.NewNamed(name, wires, params...)
}

// NewHermitian creates a dense-matrix observable on the given wires.
func NewHermitian(matrix []complex128, wires []int) *Hermitian {
	return observable.NewHermitian(matrix, wires)
}

// NewTensorProd creates a tensor product; members must act on disjoint wires.
func NewTensorProd(obs ...Observable) (*TensorProd, error) {
	return observable.NewTensorProd(obs...)
}

// NewHamiltonian creates a weighted sum; coefficient and term counts must match.
func NewHamiltonian(coeffs []float64, terms []Observable) (*Hamiltonian, error) {
	return observable.NewHamiltonian(coeffs, terms)
}
