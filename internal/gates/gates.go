// Package gates provides host-side matrix definitions for the supported
// gate set. Matrices are dense, row-major complex values; a k-wire gate is
// a 2^k x 2^k matrix where wires[0] maps to the most significant bit of
// the sub-index.
package gates

import "math"

const invSqrt2 = math.Sqrt2 / 2

// fixedGates holds the non-parametric gate set, matching the default
// population of the device gate cache.
var fixedGates = map[string]func() []complex128{
	"Identity": Identity,
	"PauliX":   PauliX,
	"PauliY":   PauliY,
	"PauliZ":   PauliZ,
	"Hadamard": Hadamard,
	"S":        SGate,
	"T":        TGate,
	"CNOT":     CNOT,
	"CZ":       CZ,
	"SWAP":     SWAP,
	"Toffoli":  Toffoli,
	"CSWAP":    CSWAP,
}

// Fixed returns the matrix for a non-parametric gate.
func Fixed(name string) ([]complex128, bool) {
	f, ok := fixedGates[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Identity returns the 2x2 identity.
func Identity() []complex128 {
	return []complex128{1, 0, 0, 1}
}

// PauliX returns the X (NOT) matrix.
func PauliX() []complex128 {
	return []complex128{0, 1, 1, 0}
}

// PauliY returns the Y matrix.
func PauliY() []complex128 {
	return []complex128{0, -1i, 1i, 0}
}

// PauliZ returns the Z matrix.
func PauliZ() []complex128 {
	return []complex128{1, 0, 0, -1}
}

// Hadamard returns the H matrix.
func Hadamard() []complex128 {
	h := complex(invSqrt2, 0)
	return []complex128{h, h, h, -h}
}

// SGate returns the phase gate diag(1, i).
func SGate() []complex128 {
	return []complex128{1, 0, 0, 1i}
}

// TGate returns the T gate diag(1, e^{i pi/4}).
func TGate() []complex128 {
	return []complex128{1, 0, 0, complex(invSqrt2, invSqrt2)}
}

// CNOT returns the controlled-NOT matrix; wires are (control, target).
func CNOT() []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}
}

// CZ returns the controlled-Z matrix.
func CZ() []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	}
}

// SWAP returns the two-qubit SWAP matrix.
func SWAP() []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}
}

// Toffoli returns the doubly-controlled NOT; wires are (control, control, target).
func Toffoli() []complex128 {
	m := eye(8)
	m[6*8+6], m[6*8+7] = 0, 1
	m[7*8+6], m[7*8+7] = 1, 0
	return m
}

// CSWAP returns the controlled SWAP; wires are (control, a, b).
func CSWAP() []complex128 {
	m := eye(8)
	m[5*8+5], m[5*8+6] = 0, 1
	m[6*8+5], m[6*8+6] = 1, 0
	return m
}

// P11 returns the |1><1| projector, the generator of PhaseShift.
func P11() []complex128 {
	return []complex128{0, 0, 0, 1}
}

// eye returns a dense n x n identity.
func eye(n int) []complex128 {
	m := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}
	return m
}

// Kron returns the Kronecker product of an na x na and an nb x nb matrix.
func Kron(a []complex128, na int, b []complex128, nb int) []complex128 {
	n := na * nb
	out := make([]complex128, n*n)
	for ar := 0; ar < na; ar++ {
		for ac := 0; ac < na; ac++ {
			for br := 0; br < nb; br++ {
				for bc := 0; bc < nb; bc++ {
					out[(ar*nb+br)*n+(ac*nb+bc)] = a[ar*na+ac] * b[br*nb+bc]
				}
			}
		}
	}
	return out
}
