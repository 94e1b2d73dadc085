package gates

// Hermitian generators for the parametric gate families. A gate with
// scaling coefficient -0.5 satisfies U(theta) = exp(-i theta G / 2) for
// its generator G; the phase-shift family uses exp(i theta P11) instead.

// XX returns the X (x) X generator of IsingXX.
func XX() []complex128 { return Kron(PauliX(), 2, PauliX(), 2) }

// YY returns the Y (x) Y generator of IsingYY.
func YY() []complex128 { return Kron(PauliY(), 2, PauliY(), 2) }

// ZZ returns the Z (x) Z generator of IsingZZ.
func ZZ() []complex128 { return Kron(PauliZ(), 2, PauliZ(), 2) }

// SingleExcitationGenerator returns the Y-like coupling on |01>,|10>.
func SingleExcitationGenerator() []complex128 {
	m := make([]complex128, 16)
	m[1*4+2] = -1i
	m[2*4+1] = 1i
	return m
}

// SingleExcitationMinusGenerator adds identity on the untouched subspace.
func SingleExcitationMinusGenerator() []complex128 {
	m := SingleExcitationGenerator()
	m[0], m[3*4+3] = 1, 1
	return m
}

// SingleExcitationPlusGenerator subtracts identity on the untouched subspace.
func SingleExcitationPlusGenerator() []complex128 {
	m := SingleExcitationGenerator()
	m[0], m[3*4+3] = -1, -1
	return m
}

// DoubleExcitationGenerator returns the coupling on |0011>,|1100>.
func DoubleExcitationGenerator() []complex128 {
	m := make([]complex128, 16*16)
	m[deLo*16+deHi] = -1i
	m[deHi*16+deLo] = 1i
	return m
}

// DoubleExcitationMinusGenerator adds identity on the untouched subspace.
func DoubleExcitationMinusGenerator() []complex128 {
	m := DoubleExcitationGenerator()
	for i := 0; i < 16; i++ {
		if i != deLo && i != deHi {
			m[i*16+i] = 1
		}
	}
	return m
}

// DoubleExcitationPlusGenerator subtracts identity on the untouched subspace.
func DoubleExcitationPlusGenerator() []complex128 {
	m := DoubleExcitationGenerator()
	for i := 0; i < 16; i++ {
		if i != deLo && i != deHi {
			m[i*16+i] = -1
		}
	}
	return m
}
