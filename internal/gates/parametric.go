package gates

import (
	"math"
	"math/cmplx"
)

// parametricGates holds the single-parameter gate families supported by
// the adjoint differentiation method.
var parametricGates = map[string]func(theta float64) []complex128{
	"RX":                     RX,
	"RY":                     RY,
	"RZ":                     RZ,
	"PhaseShift":             PhaseShift,
	"ControlledPhaseShift":   ControlledPhaseShift,
	"CRX":                    CRX,
	"CRY":                    CRY,
	"CRZ":                    CRZ,
	"IsingXX":                IsingXX,
	"IsingYY":                IsingYY,
	"IsingZZ":                IsingZZ,
	"SingleExcitation":       SingleExcitation,
	"SingleExcitationMinus":  SingleExcitationMinus,
	"SingleExcitationPlus":   SingleExcitationPlus,
	"DoubleExcitation":       DoubleExcitation,
	"DoubleExcitationMinus":  DoubleExcitationMinus,
	"DoubleExcitationPlus":   DoubleExcitationPlus,
	"MultiRZ":                nil, // wire-count dependent, see MultiRZ
}

// IsParametric reports whether name is a supported single-parameter gate.
func IsParametric(name string) bool {
	_, ok := parametricGates[name]
	return ok
}

// Parametric returns the matrix for a single-parameter gate. MultiRZ is
// excluded here because its dimension depends on the wire count; use
// MultiRZ directly.
func Parametric(name string, theta float64) ([]complex128, bool) {
	f, ok := parametricGates[name]
	if !ok || f == nil {
		return nil, false
	}
	return f(theta), true
}

// RX returns exp(-i theta X / 2).
func RX(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return []complex128{c, s, s, c}
}

// RY returns exp(-i theta Y / 2).
func RY(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return []complex128{c, -s, s, c}
}

// RZ returns exp(-i theta Z / 2).
func RZ(theta float64) []complex128 {
	e := cmplx.Exp(complex(0, -theta/2))
	return []complex128{e, 0, 0, cmplx.Conj(e)}
}

// PhaseShift returns diag(1, e^{i theta}).
func PhaseShift(theta float64) []complex128 {
	return []complex128{1, 0, 0, cmplx.Exp(complex(0, theta))}
}

// ControlledPhaseShift returns diag(1, 1, 1, e^{i theta}).
func ControlledPhaseShift(theta float64) []complex128 {
	m := eye(4)
	m[3*4+3] = cmplx.Exp(complex(0, theta))
	return m
}

// controlled embeds a single-qubit gate in the lower-right block of a 4x4.
func controlled(g []complex128) []complex128 {
	m := eye(4)
	m[2*4+2], m[2*4+3] = g[0], g[1]
	m[3*4+2], m[3*4+3] = g[2], g[3]
	return m
}

// CRX returns the controlled RX rotation; wires are (control, target).
func CRX(theta float64) []complex128 { return controlled(RX(theta)) }

// CRY returns the controlled RY rotation.
func CRY(theta float64) []complex128 { return controlled(RY(theta)) }

// CRZ returns the controlled RZ rotation.
func CRZ(theta float64) []complex128 { return controlled(RZ(theta)) }

// IsingXX returns exp(-i theta XX / 2).
func IsingXX(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return []complex128{
		c, 0, 0, s,
		0, c, s, 0,
		0, s, c, 0,
		s, 0, 0, c,
	}
}

// IsingYY returns exp(-i theta YY / 2).
func IsingYY(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, math.Sin(theta/2))
	return []complex128{
		c, 0, 0, s,
		0, c, -s, 0,
		0, -s, c, 0,
		s, 0, 0, c,
	}
}

// IsingZZ returns exp(-i theta ZZ / 2).
func IsingZZ(theta float64) []complex128 {
	e := cmplx.Exp(complex(0, -theta/2))
	ec := cmplx.Conj(e)
	return []complex128{
		e, 0, 0, 0,
		0, ec, 0, 0,
		0, 0, ec, 0,
		0, 0, 0, e,
	}
}

// SingleExcitation returns the Givens rotation on the |01>,|10> subspace.
func SingleExcitation(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return []complex128{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// SingleExcitationMinus is SingleExcitation with e^{-i theta/2} phases on
// the untouched subspace.
func SingleExcitationMinus(theta float64) []complex128 {
	m := SingleExcitation(theta)
	e := cmplx.Exp(complex(0, -theta/2))
	m[0], m[3*4+3] = e, e
	return m
}

// SingleExcitationPlus is SingleExcitation with e^{+i theta/2} phases on
// the untouched subspace.
func SingleExcitationPlus(theta float64) []complex128 {
	m := SingleExcitation(theta)
	e := cmplx.Exp(complex(0, theta/2))
	m[0], m[3*4+3] = e, e
	return m
}

// Double-excitation rotations couple |0011> and |1100>.
const (
	deLo = 3  // |0011>
	deHi = 12 // |1100>
)

// DoubleExcitation returns the four-qubit Givens rotation.
func DoubleExcitation(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	m := eye(16)
	m[deLo*16+deLo], m[deLo*16+deHi] = c, -s
	m[deHi*16+deLo], m[deHi*16+deHi] = s, c
	return m
}

// DoubleExcitationMinus phases the untouched subspace by e^{-i theta/2}.
func DoubleExcitationMinus(theta float64) []complex128 {
	m := DoubleExcitation(theta)
	e := cmplx.Exp(complex(0, -theta/2))
	for i := 0; i < 16; i++ {
		if i != deLo && i != deHi {
			m[i*16+i] = e
		}
	}
	return m
}

// DoubleExcitationPlus phases the untouched subspace by e^{+i theta/2}.
func DoubleExcitationPlus(theta float64) []complex128 {
	m := DoubleExcitation(theta)
	e := cmplx.Exp(complex(0, theta/2))
	for i := 0; i < 16; i++ {
		if i != deLo && i != deHi {
			m[i*16+i] = e
		}
	}
	return m
}

// MultiRZ returns exp(-i theta Z^{(x)k} / 2) on k wires: a diagonal whose
// entry for basis state p is e^{-i theta/2 * (-1)^popcount(p)}.
func MultiRZ(theta float64, k int) []complex128 {
	dim := 1 << k
	m := make([]complex128, dim*dim)
	for p := 0; p < dim; p++ {
		sign := 1.0
		if popcount(p)%2 == 1 {
			sign = -1.0
		}
		m[p*dim+p] = cmplx.Exp(complex(0, -theta/2*sign))
	}
	return m
}

// MultiZ returns the diagonal Z^{(x)k} matrix, the generator of MultiRZ.
func MultiZ(k int) []complex128 {
	dim := 1 << k
	m := make([]complex128, dim*dim)
	for p := 0; p < dim; p++ {
		if popcount(p)%2 == 1 {
			m[p*dim+p] = -1
		} else {
			m[p*dim+p] = 1
		}
	}
	return m
}

func popcount(x int) int {
	n := 0
	for ; x != 0; x &= x - 1 {
		n++
	}
	return n
}
