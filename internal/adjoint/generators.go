package adjoint

import (
	"fmt"

	"github.com/aurora-qml/aurora/internal/gates"
	"github.com/aurora-qml/aurora/internal/statevec"
)

// generatorFunc replaces a gate's derivative with the application of its
// Hermitian generator; adj requests the conjugate transpose (a no-op for
// a Hermitian matrix, kept for symmetry with gate application).
type generatorFunc func(sv *statevec.StateVector, wires []int, adj bool) error

// generator pairs the generator action with the real scaling coefficient
// from d/dtheta exp(-i theta G / 2) = -(i/2) G exp(-i theta G / 2).
type generator struct {
	apply generatorFunc
	coeff float64
}

// onAll applies a fixed generator matrix to the operation's wires.
func onAll(matrix func() []complex128) generatorFunc {
	return func(sv *statevec.StateVector, wires []int, adj bool) error {
		return sv.ApplyMatrix(matrix(), wires, adj)
	}
}

// onTarget applies a fixed generator matrix to the last wire only; the
// remaining wires are controls.
func onTarget(matrix func() []complex128) generatorFunc {
	return func(sv *statevec.StateVector, wires []int, adj bool) error {
		return sv.ApplyMatrix(matrix(), wires[len(wires)-1:], adj)
	}
}

// generators maps parametric-gate names to their generator actions and
// scaling coefficients.
var generators = map[string]generator{
	"RX":                    {onAll(gates.PauliX), -0.5},
	"RY":                    {onAll(gates.PauliY), -0.5},
	"RZ":                    {onAll(gates.PauliZ), -0.5},
	"IsingXX":               {onAll(gates.XX), -0.5},
	"IsingYY":               {onAll(gates.YY), -0.5},
	"IsingZZ":               {onAll(gates.ZZ), -0.5},
	"PhaseShift":            {onAll(gates.P11), 1},
	"ControlledPhaseShift":  {onTarget(gates.P11), 1},
	"CRX":                   {onTarget(gates.PauliX), -0.5},
	"CRY":                   {onTarget(gates.PauliY), -0.5},
	"CRZ":                   {onTarget(gates.PauliZ), -0.5},
	"SingleExcitation":      {onAll(gates.SingleExcitationGenerator), -0.5},
	"SingleExcitationMinus": {onAll(gates.SingleExcitationMinusGenerator), -0.5},
	"SingleExcitationPlus":  {onAll(gates.SingleExcitationPlusGenerator), -0.5},
	"DoubleExcitation":      {onAll(gates.DoubleExcitationGenerator), -0.5},
	"DoubleExcitationMinus": {onAll(gates.DoubleExcitationMinusGenerator), -0.5},
	"DoubleExcitationPlus":  {onAll(gates.DoubleExcitationPlusGenerator), -0.5},
	"MultiRZ": {func(sv *statevec.StateVector, wires []int, adj bool) error {
		return sv.ApplyMatrix(gates.MultiZ(len(wires)), wires, adj)
	}, -0.5},
}

// applyGenerator applies the generator for a parametric gate and returns
// its scaling coefficient.
func applyGenerator(sv *statevec.StateVector, name string, wires []int, adj bool) (float64, error) {
	g, ok := generators[name]
	if !ok {
		return 0, fmt.Errorf("adjoint: %q: %w", name, ErrUnknownGenerator)
	}
	if err := g.apply(sv, wires, adj); err != nil {
		return 0, fmt.Errorf("adjoint: generator for %q: %w", name, err)
	}
	return g.coeff, nil
}
