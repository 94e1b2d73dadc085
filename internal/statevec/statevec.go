// Package statevec provides the state-vector representation used by the
// adjoint differentiation engine. A StateVector owns a dense complex
// amplitude buffer of length 2^n tied to one device; kernels run through
// a pluggable Backend.
package statevec

import (
	"fmt"
	"math/bits"

	"github.com/aurora-qml/aurora/internal/device"
	"github.com/aurora-qml/aurora/internal/gates"
)

// StateVector is a device-tagged amplitude buffer. Every live copy is
// exclusively owned: operations mutate in place and copies are deep.
type StateVector struct {
	backend Backend
	tag     device.Tag
	data    []complex128
	nq      int
}

// New creates the n-qubit basis state |0...0> on the given backend and device.
func New(nq int, b Backend, tag device.Tag) *StateVector {
	data := make([]complex128, 1<<nq)
	data[0] = 1
	return &StateVector{backend: b, tag: tag, data: data, nq: nq}
}

// Zeros creates an n-qubit buffer with every amplitude zero. Used as an
// accumulator by Hamiltonian application.
func Zeros(nq int, b Backend, tag device.Tag) *StateVector {
	return &StateVector{backend: b, tag: tag, data: make([]complex128, 1<<nq), nq: nq}
}

// FromData copies an amplitude buffer onto the given backend and device.
// The length must be a power of two.
func FromData(data []complex128, b Backend, tag device.Tag) (*StateVector, error) {
	n := len(data)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("statevec: length %d: %w", n, ErrInvalidLength)
	}
	buf := make([]complex128, n)
	copy(buf, data)
	return &StateVector{backend: b, tag: tag, data: buf, nq: bits.TrailingZeros(uint(n))}, nil
}

// Copy returns an independent deep copy on the same device.
func (sv *StateVector) Copy() *StateVector {
	buf := make([]complex128, len(sv.data))
	copy(buf, sv.data)
	return &StateVector{backend: sv.backend, tag: sv.tag, data: buf, nq: sv.nq}
}

// UpdateFrom overwrites this state's amplitudes with other's.
func (sv *StateVector) UpdateFrom(other *StateVector) error {
	if sv.tag != other.tag {
		return fmt.Errorf("statevec: update %v from %v: %w", sv.tag, other.tag, ErrDeviceMismatch)
	}
	if len(sv.data) != len(other.data) {
		return fmt.Errorf("statevec: update %d from %d: %w", len(sv.data), len(other.data), ErrLengthMismatch)
	}
	copy(sv.data, other.data)
	return nil
}

// Zero resets every amplitude to zero.
func (sv *StateVector) Zero() {
	for i := range sv.data {
		sv.data[i] = 0
	}
}

// NumQubits returns n for a 2^n amplitude buffer.
func (sv *StateVector) NumQubits() int { return sv.nq }

// Len returns the amplitude count.
func (sv *StateVector) Len() int { return len(sv.data) }

// Data returns the live amplitude buffer. Callers must not share it
// across devices.
func (sv *StateVector) Data() []complex128 { return sv.data }

// Backend returns the kernel backend this state runs on.
func (sv *StateVector) Backend() Backend { return sv.backend }

// Tag returns the device/stream identity.
func (sv *StateVector) Tag() device.Tag { return sv.tag }

// DeviceID returns the device this state lives on.
func (sv *StateVector) DeviceID() int { return sv.tag.Device }

// StreamID returns the stream this state is ordered on.
func (sv *StateVector) StreamID() int { return sv.tag.Stream }

// ApplyOperation applies a named gate. Parametric gates take exactly one
// value in params; inverse applies the conjugate transpose.
func (sv *StateVector) ApplyOperation(name string, wires []int, inverse bool, params []float64) error {
	if err := sv.checkWires(wires); err != nil {
		return err
	}

	var theta float64
	if len(params) > 0 {
		theta = params[0]
	}

	var matrix []complex128
	switch {
	case name == "MultiRZ":
		matrix = gates.MultiRZ(theta, len(wires))
	case gates.IsParametric(name):
		m, ok := gates.Parametric(name, theta)
		if !ok {
			return fmt.Errorf("statevec: %q: %w", name, ErrUnknownGate)
		}
		matrix = m
	default:
		m, ok := gates.Fixed(name)
		if !ok {
			return fmt.Errorf("statevec: %q: %w", name, ErrUnknownGate)
		}
		matrix = m
	}

	if err := checkDim(matrix, wires); err != nil {
		return fmt.Errorf("statevec: %q: %w", name, err)
	}
	return sv.backend.ApplyGate(sv.data, sv.bitWires(wires), name, theta, matrix, inverse)
}

// ApplyMatrix applies an explicit row-major matrix, e.g. for custom gates
// and generator actions.
func (sv *StateVector) ApplyMatrix(matrix []complex128, wires []int, inverse bool) error {
	if err := sv.checkWires(wires); err != nil {
		return err
	}
	if err := checkDim(matrix, wires); err != nil {
		return err
	}
	return sv.backend.ApplyMatrix(sv.data, sv.bitWires(wires), matrix, inverse)
}

// InnerProduct returns <sv|other>, conjugate-linear in sv. Both states
// must live on the same device.
func (sv *StateVector) InnerProduct(other *StateVector) (complex128, error) {
	if sv.tag != other.tag {
		return 0, fmt.Errorf("statevec: inner product across %v and %v: %w", sv.tag, other.tag, ErrDeviceMismatch)
	}
	if len(sv.data) != len(other.data) {
		return 0, fmt.Errorf("statevec: inner product: %w", ErrLengthMismatch)
	}
	return sv.backend.InnerProduct(sv.data, other.data), nil
}

// ScaleAndAdd accumulates sv += c * src.
func (sv *StateVector) ScaleAndAdd(c complex128, src *StateVector) error {
	if sv.tag != src.tag {
		return fmt.Errorf("statevec: scale-add across %v and %v: %w", sv.tag, src.tag, ErrDeviceMismatch)
	}
	if len(sv.data) != len(src.data) {
		return fmt.Errorf("statevec: scale-add: %w", ErrLengthMismatch)
	}
	sv.backend.ScaleAndAdd(c, src.data, sv.data)
	return nil
}

// bitWires translates wire labels to bit positions: wire 0 is the most
// significant bit of the state index.
func (sv *StateVector) bitWires(wires []int) []int {
	out := make([]int, len(wires))
	for i, w := range wires {
		out[i] = sv.nq - 1 - w
	}
	return out
}

func (sv *StateVector) checkWires(wires []int) error {
	if len(wires) == 0 {
		return fmt.Errorf("statevec: empty wire list: %w", ErrWireOutOfRange)
	}
	for _, w := range wires {
		if w < 0 || w >= sv.nq {
			return fmt.Errorf("statevec: wire %d on %d qubits: %w", w, sv.nq, ErrWireOutOfRange)
		}
	}
	return nil
}

func checkDim(matrix []complex128, wires []int) error {
	dim := 1 << len(wires)
	if len(matrix) != dim*dim {
		return fmt.Errorf("matrix of %d entries for %d wires: %w", len(matrix), len(wires), ErrBadMatrix)
	}
	return nil
}
