package cpu

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-qml/aurora/internal/device"
	"github.com/aurora-qml/aurora/internal/gates"
	"github.com/aurora-qml/aurora/internal/parallel"
	"github.com/aurora-qml/aurora/internal/statevec"
)

const tol = 1e-12

func assertAmps(t *testing.T, want, got []complex128) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		if cmplx.Abs(want[i]-got[i]) > tol {
			t.Fatalf("amplitude %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHadamardOnZero(t *testing.T) {
	sv := statevec.New(1, New(), device.Tag{})
	require.NoError(t, sv.ApplyOperation("Hadamard", []int{0}, false, nil))

	h := complex(math.Sqrt2/2, 0)
	assertAmps(t, []complex128{h, h}, sv.Data())
}

func TestPauliXWireOrdering(t *testing.T) {
	// Wire 0 is the most significant index bit: X on wire 0 of a
	// two-qubit register maps |00> to |10> (index 2).
	sv := statevec.New(2, New(), device.Tag{})
	require.NoError(t, sv.ApplyOperation("PauliX", []int{0}, false, nil))
	assertAmps(t, []complex128{0, 0, 1, 0}, sv.Data())

	sv = statevec.New(2, New(), device.Tag{})
	require.NoError(t, sv.ApplyOperation("PauliX", []int{1}, false, nil))
	assertAmps(t, []complex128{0, 1, 0, 0}, sv.Data())
}

func TestBellState(t *testing.T) {
	sv := statevec.New(2, New(), device.Tag{})
	require.NoError(t, sv.ApplyOperation("Hadamard", []int{0}, false, nil))
	require.NoError(t, sv.ApplyOperation("CNOT", []int{0, 1}, false, nil))

	h := complex(math.Sqrt2/2, 0)
	assertAmps(t, []complex128{h, 0, 0, h}, sv.Data())
}

func TestCNOTReversedWires(t *testing.T) {
	// Control on wire 1: |01> flips to |11>.
	sv, err := statevec.FromData([]complex128{0, 1, 0, 0}, New(), device.Tag{})
	require.NoError(t, err)
	require.NoError(t, sv.ApplyOperation("CNOT", []int{1, 0}, false, nil))
	assertAmps(t, []complex128{0, 0, 0, 1}, sv.Data())
}

func TestAdjointUndoesGate(t *testing.T) {
	b := New()
	sv := statevec.New(3, b, device.Tag{})
	require.NoError(t, sv.ApplyOperation("Hadamard", []int{1}, false, nil))
	require.NoError(t, sv.ApplyOperation("RX", []int{1}, false, []float64{0.7}))
	require.NoError(t, sv.ApplyOperation("IsingXX", []int{0, 2}, false, []float64{1.1}))

	require.NoError(t, sv.ApplyOperation("IsingXX", []int{0, 2}, true, []float64{1.1}))
	require.NoError(t, sv.ApplyOperation("RX", []int{1}, true, []float64{0.7}))
	require.NoError(t, sv.ApplyOperation("Hadamard", []int{1}, true, nil))

	want := make([]complex128, 8)
	want[0] = 1
	assertAmps(t, want, sv.Data())
}

func TestApplyMatrixMatchesNamedGate(t *testing.T) {
	b := New()
	theta := 0.9

	byName := statevec.New(2, b, device.Tag{})
	require.NoError(t, byName.ApplyOperation("Hadamard", []int{0}, false, nil))
	require.NoError(t, byName.ApplyOperation("CRY", []int{0, 1}, false, []float64{theta}))

	byMatrix := statevec.New(2, b, device.Tag{})
	require.NoError(t, byMatrix.ApplyOperation("Hadamard", []int{0}, false, nil))
	require.NoError(t, byMatrix.ApplyMatrix(gates.CRY(theta), []int{0, 1}, false))

	assertAmps(t, byName.Data(), byMatrix.Data())
}

func TestThreeWireGate(t *testing.T) {
	// Toffoli flips the target only when both controls are set.
	sv, err := statevec.FromData([]complex128{0, 0, 0, 0, 0, 0, 1, 0}, New(), device.Tag{})
	require.NoError(t, err)
	require.NoError(t, sv.ApplyOperation("Toffoli", []int{0, 1, 2}, false, nil))
	assertAmps(t, []complex128{0, 0, 0, 0, 0, 0, 0, 1}, sv.Data())
}

func TestParallelMatchesSequential(t *testing.T) {
	seq, par := New(), New()
	seq.SetParallelism(parallel.Sequential())
	par.SetParallelism(parallel.Config{Enabled: true, NumWorkers: 4})

	a := statevec.New(6, seq, device.Tag{})
	b := statevec.New(6, par, device.Tag{})
	ops := []struct {
		name  string
		wires []int
		theta []float64
	}{
		{"Hadamard", []int{0}, nil},
		{"Hadamard", []int{3}, nil},
		{"CNOT", []int{0, 5}, nil},
		{"RZ", []int{2}, []float64{0.4}},
		{"IsingYY", []int{1, 4}, []float64{1.3}},
	}
	for _, op := range ops {
		require.NoError(t, a.ApplyOperation(op.name, op.wires, false, op.theta))
		require.NoError(t, b.ApplyOperation(op.name, op.wires, false, op.theta))
	}
	assertAmps(t, a.Data(), b.Data())
}

func TestInnerProduct(t *testing.T) {
	b := New()
	ip := b.InnerProduct([]complex128{1i, 0}, []complex128{1i, 0})
	assert.InDelta(t, 1, real(ip), tol)
	assert.InDelta(t, 0, imag(ip), tol)

	ip = b.InnerProduct([]complex128{1, 0}, []complex128{0, 1})
	assert.Equal(t, complex128(0), ip)
}

func TestScaleAndAdd(t *testing.T) {
	b := New()
	dst := []complex128{1, 2}
	b.ScaleAndAdd(2i, []complex128{1, 1}, dst)
	assert.Equal(t, []complex128{1 + 2i, 2 + 2i}, dst)
}

func TestApplyMatrix_BadDim(t *testing.T) {
	b := New()
	err := b.ApplyMatrix(make([]complex128, 4), []int{0, 1}, make([]complex128, 4), false)
	assert.ErrorIs(t, err, statevec.ErrBadMatrix)
}

func TestInsertZeroBits(t *testing.T) {
	// With bits {0, 2} cleared, t enumerates the remaining positions.
	got := make([]int, 4)
	for i := range got {
		got[i] = insertZeroBits(i, []int{0, 2})
	}
	assert.Equal(t, []int{0, 2, 8, 10}, got)
}
