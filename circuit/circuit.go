// Copyright 2025 Aurora QML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package circuit provides the public API for operation tapes.
package circuit

import (
	"github.com/aurora-qml/aurora/internal/circuit"
)

// Operation is one recorded gate application.
type Operation = circuit.Operation

// Tape is an ordered, immutable record of operations forming a circuit.
type Tape = circuit.Tape

// State-preparation sentinel operation names.
const (
	QubitStateVector = circuit.QubitStateVector
	BasisState       = circuit.BasisState
)

// NewTape records the given operations.
func NewTape(ops ...Operation) *Tape {
	return circuit.NewTape(ops...)
}
