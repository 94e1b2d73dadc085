package observable

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-qml/aurora/internal/backend/cpu"
	"github.com/aurora-qml/aurora/internal/device"
	"github.com/aurora-qml/aurora/internal/statevec"
)

const tol = 1e-12

func TestNamedEqual(t *testing.T) {
	a := NewNamed("PauliZ", []int{0})
	b := NewNamed("PauliZ", []int{0})
	c := NewNamed("PauliZ", []int{1})
	d := NewNamed("PauliX", []int{0})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(NewHermitian([]complex128{1, 0, 0, -1}, []int{0})))
}

func TestNamedName(t *testing.T) {
	assert.Equal(t, "PauliZ[1]", NewNamed("PauliZ", []int{1}).Name())
}

func TestNamedWiresCopied(t *testing.T) {
	wires := []int{0, 1}
	o := NewNamed("CNOT", wires)
	wires[0] = 9
	assert.Equal(t, []int{0, 1}, o.Wires())

	got := o.Wires()
	got[0] = 9
	assert.Equal(t, []int{0, 1}, o.Wires())
}

func TestHermitianEqual(t *testing.T) {
	z := []complex128{1, 0, 0, -1}
	a := NewHermitian(z, []int{0})
	b := NewHermitian(z, []int{0})
	c := NewHermitian([]complex128{0, 1, 1, 0}, []int{0})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewNamed("PauliZ", []int{0})))
}

func TestHermitianMatchesNamed(t *testing.T) {
	backend := cpu.New()
	named := NewNamed("PauliY", []int{0})
	herm := NewHermitian([]complex128{0, -1i, 1i, 0}, []int{0})

	a := statevec.New(1, backend, device.Tag{})
	require.NoError(t, a.ApplyOperation("Hadamard", []int{0}, false, nil))
	b := a.Copy()

	require.NoError(t, named.ApplyInPlace(a))
	require.NoError(t, herm.ApplyInPlace(b))
	for i := range a.Data() {
		assert.InDelta(t, 0, cmplx.Abs(a.Data()[i]-b.Data()[i]), tol)
	}
}

func TestTensorProd(t *testing.T) {
	tp, err := NewTensorProd(NewNamed("PauliZ", []int{2}), NewNamed("PauliX", []int{0}))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, tp.Wires())
	assert.Equal(t, 2, tp.Size())
	assert.Equal(t, "PauliZ[2] @ PauliX[0]", tp.Name())
}

func TestTensorProd_OverlappingWires(t *testing.T) {
	_, err := NewTensorProd(NewNamed("PauliZ", []int{0}), NewNamed("PauliX", []int{0}))
	assert.ErrorIs(t, err, ErrOverlappingWires)
}

func TestTensorProdEqual(t *testing.T) {
	a, err := NewTensorProd(NewNamed("PauliZ", []int{0}), NewNamed("PauliX", []int{1}))
	require.NoError(t, err)
	b, err := NewTensorProd(NewNamed("PauliZ", []int{0}), NewNamed("PauliX", []int{1}))
	require.NoError(t, err)
	// Same members in a different order are not structurally equal.
	c, err := NewTensorProd(NewNamed("PauliX", []int{1}), NewNamed("PauliZ", []int{0}))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestHamiltonian_CoeffTermMismatch(t *testing.T) {
	_, err := NewHamiltonian([]float64{0.5}, []Observable{
		NewNamed("PauliZ", []int{0}), NewNamed("PauliX", []int{1}),
	})
	assert.ErrorIs(t, err, ErrCoeffTermMismatch)
}

func TestHamiltonianWiresSortedUnion(t *testing.T) {
	h, err := NewHamiltonian([]float64{1, 1}, []Observable{
		NewNamed("PauliZ", []int{3}), NewNamed("PauliX", []int{1}),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, h.Wires())
}

func TestHamiltonianApplyInPlace(t *testing.T) {
	// H = 0.5 Z(0) + 2 X(0) applied to |0> gives 0.5|0> + 2|1>.
	backend := cpu.New()
	h, err := NewHamiltonian([]float64{0.5, 2}, []Observable{
		NewNamed("PauliZ", []int{0}), NewNamed("PauliX", []int{0}),
	})
	require.NoError(t, err)

	sv := statevec.New(1, backend, device.Tag{})
	require.NoError(t, h.ApplyInPlace(sv))

	assert.InDelta(t, 0.5, real(sv.Data()[0]), tol)
	assert.InDelta(t, 2, real(sv.Data()[1]), tol)
}

func TestHamiltonianEqual(t *testing.T) {
	mk := func(c float64) *Hamiltonian {
		h, err := NewHamiltonian([]float64{c}, []Observable{NewNamed("PauliZ", []int{0})})
		require.NoError(t, err)
		return h
	}
	assert.True(t, mk(0.5).Equal(mk(0.5)))
	assert.False(t, mk(0.5).Equal(mk(0.25)))
}

func TestHamiltonianExpval(t *testing.T) {
	// <+|X|+> = 1, so <+|(0.3 X + 0.7 Z)|+> = 0.3.
	backend := cpu.New()
	h, err := NewHamiltonian([]float64{0.3, 0.7}, []Observable{
		NewNamed("PauliX", []int{0}), NewNamed("PauliZ", []int{0}),
	})
	require.NoError(t, err)

	plus := statevec.New(1, backend, device.Tag{})
	require.NoError(t, plus.ApplyOperation("Hadamard", []int{0}, false, nil))

	applied := plus.Copy()
	require.NoError(t, h.ApplyInPlace(applied))
	ip, err := plus.InnerProduct(applied)
	require.NoError(t, err)

	assert.InDelta(t, 0.3, real(ip), tol)
}
