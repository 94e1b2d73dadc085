package adjoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-qml/aurora/internal/backend/cpu"
	"github.com/aurora-qml/aurora/internal/circuit"
	"github.com/aurora-qml/aurora/internal/observable"
)

// Central finite differences against the adjoint Jacobian for every
// supported parametric gate family. Both sides run on the same kernel,
// so a disagreement points at the generator table or the sweep itself.

const (
	fdStep = 1e-5
	fdTol  = 1e-6
)

// prepOps builds a non-trivial, entangled, complex-amplitude state using
// only non-parametric gates so the gate under test holds the single
// trainable position.
func prepOps(nq int) []circuit.Operation {
	ops := make([]circuit.Operation, 0, 2*nq+1)
	for w := 0; w < nq; w++ {
		ops = append(ops, circuit.Operation{Name: "Hadamard", Wires: []int{w}})
		ops = append(ops, circuit.Operation{Name: "T", Wires: []int{w}})
	}
	if nq > 1 {
		ops = append(ops, circuit.Operation{Name: "CNOT", Wires: []int{0, 1}})
	}
	return ops
}

func gradCase(t *testing.T, name string, nq int, wires []int, theta float64, inverse bool) {
	t.Helper()
	engine := New(cpu.New())

	build := func(th float64) *circuit.Tape {
		ops := prepOps(nq)
		ops = append(ops, circuit.Operation{Name: name, Params: []float64{th}, Wires: wires, Inverse: inverse})
		return circuit.NewTape(ops...)
	}

	obs := []observable.Observable{
		observable.NewNamed("PauliZ", []int{wires[0]}),
		observable.NewNamed("PauliX", []int{wires[0]}),
	}
	ref := zeroState(nq)

	jac := make([]float64, len(obs))
	require.NoError(t, engine.Jacobian(jac, ref, obs, build(theta), []int{0}, true))

	for i, ob := range obs {
		plus, err := engine.Expval(ob, ref, build(theta+fdStep), true)
		require.NoError(t, err)
		minus, err := engine.Expval(ob, ref, build(theta-fdStep), true)
		require.NoError(t, err)
		fd := (plus - minus) / (2 * fdStep)
		assert.InDelta(t, fd, jac[i], fdTol, "%s obs=%s", name, ob.Name())
	}
}

func TestGradientSingleQubitGates(t *testing.T) {
	for _, name := range []string{"RX", "RY", "RZ", "PhaseShift"} {
		t.Run(name, func(t *testing.T) {
			gradCase(t, name, 1, []int{0}, 0.683, false)
		})
	}
}

func TestGradientTwoQubitGates(t *testing.T) {
	names := []string{
		"CRX", "CRY", "CRZ", "ControlledPhaseShift",
		"IsingXX", "IsingYY", "IsingZZ",
		"SingleExcitation", "SingleExcitationMinus", "SingleExcitationPlus",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			gradCase(t, name, 2, []int{0, 1}, -0.927, false)
		})
	}
}

func TestGradientReversedWires(t *testing.T) {
	for _, name := range []string{"CRY", "IsingXX", "SingleExcitation"} {
		t.Run(name, func(t *testing.T) {
			gradCase(t, name, 2, []int{1, 0}, 1.234, false)
		})
	}
}

func TestGradientMultiRZ(t *testing.T) {
	gradCase(t, "MultiRZ", 3, []int{0, 1, 2}, 0.412, false)
	gradCase(t, "MultiRZ", 3, []int{2, 0}, 0.412, false)
}

func TestGradientDoubleExcitationGates(t *testing.T) {
	names := []string{"DoubleExcitation", "DoubleExcitationMinus", "DoubleExcitationPlus"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			gradCase(t, name, 4, []int{0, 1, 2, 3}, 0.381, false)
		})
	}
}

func TestGradientInverseGates(t *testing.T) {
	for _, name := range []string{"RX", "CRZ", "IsingYY", "PhaseShift"} {
		t.Run(name, func(t *testing.T) {
			nq, wires := 1, []int{0}
			if name != "RX" && name != "PhaseShift" {
				nq, wires = 2, []int{0, 1}
			}
			gradCase(t, name, nq, wires, 0.555, true)
		})
	}
}

func TestGradientDeepCircuit(t *testing.T) {
	// Several trainable positions interleaved with fixed gates.
	engine := New(cpu.New())
	thetas := []float64{0.3, -1.1, 0.8}

	build := func(th []float64) *circuit.Tape {
		return circuit.NewTape(
			circuit.Operation{Name: "Hadamard", Wires: []int{0}},
			circuit.Operation{Name: "RX", Params: []float64{th[0]}, Wires: []int{0}},
			circuit.Operation{Name: "CNOT", Wires: []int{0, 1}},
			circuit.Operation{Name: "RY", Params: []float64{th[1]}, Wires: []int{1}},
			circuit.Operation{Name: "T", Wires: []int{1}},
			circuit.Operation{Name: "IsingZZ", Params: []float64{th[2]}, Wires: []int{0, 1}},
		)
	}

	obs := []observable.Observable{
		observable.NewNamed("PauliZ", []int{0}),
		observable.NewNamed("PauliY", []int{1}),
	}
	ref := zeroState(2)

	jac := make([]float64, len(obs)*len(thetas))
	require.NoError(t, engine.Jacobian(jac, ref, obs, build(thetas), []int{0, 1, 2}, true))

	for col := range thetas {
		for i, ob := range obs {
			up, down := append([]float64(nil), thetas...), append([]float64(nil), thetas...)
			up[col] += fdStep
			down[col] -= fdStep
			plus, err := engine.Expval(ob, ref, build(up), true)
			require.NoError(t, err)
			minus, err := engine.Expval(ob, ref, build(down), true)
			require.NoError(t, err)
			fd := (plus - minus) / (2 * fdStep)
			assert.InDelta(t, fd, jac[i*len(thetas)+col], fdTol, "obs=%d col=%d", i, col)
		}
	}
}
