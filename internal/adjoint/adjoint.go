// Package adjoint computes Jacobians of circuit expectation values with
// the adjoint differentiation method of arXiv:2009.02823: one backward
// sweep over the operations tape propagates a ket state and one bra
// state per observable, filling every trainable-parameter column at a
// cost roughly independent of the parameter count.
package adjoint

import (
	"fmt"

	"github.com/aurora-qml/aurora/internal/circuit"
	"github.com/aurora-qml/aurora/internal/device"
	"github.com/aurora-qml/aurora/internal/observable"
	"github.com/aurora-qml/aurora/internal/parallel"
	"github.com/aurora-qml/aurora/internal/statevec"
)

// Engine evaluates adjoint-method Jacobians on one kernel backend.
type Engine struct {
	backend statevec.Backend
	par     parallel.Config
}

// New creates an engine on the given kernel backend with default
// observable fan-out parallelism.
func New(backend statevec.Backend) *Engine {
	return &Engine{backend: backend, par: parallel.DefaultConfig()}
}

// SetParallelism overrides the intra-computation fan-out configuration.
func (e *Engine) SetParallelism(cfg parallel.Config) {
	e.par = cfg
}

// Jacobian fills jac with d<obs_i>/d(theta_j) for the circuit described
// by tape. jac is caller-preallocated and row-major with one row per
// observable and one column per trainable parameter; after an error its
// contents are undefined.
//
// ref is the reference amplitude buffer: the post-circuit state, or a
// pre-circuit state when applyOps asks the engine to forward-apply the
// tape first. trainable holds ascending positions among the parametric
// operations of the tape in forward order and must be non-empty.
func (e *Engine) Jacobian(jac []float64, ref []complex128, obs []observable.Observable, tape *circuit.Tape, trainable []int, applyOps bool) error {
	if err := validate(jac, len(obs), tape, trainable); err != nil {
		return err
	}
	return e.jacobian(jac, ref, obs, tape, trainable, applyOps, device.Tag{})
}

// validate rejects bad arguments before any state copies are made.
func validate(jac []float64, numObs int, tape *circuit.Tape, trainable []int) error {
	if len(trainable) == 0 {
		return ErrEmptyTrainableParams
	}
	prev := -1
	for _, tp := range trainable {
		if tp <= prev || tp >= tape.NumParamOps() {
			return fmt.Errorf("adjoint: position %d of %d parametric operations: %w",
				tp, tape.NumParamOps(), ErrBadTrainableParams)
		}
		prev = tp
	}
	if len(jac) < numObs*len(trainable) {
		return fmt.Errorf("adjoint: %d entries for %d observables x %d parameters: %w",
			len(jac), numObs, len(trainable), ErrJacobianSize)
	}
	for _, op := range tape.Ops() {
		if op.NumParams() > 1 {
			return fmt.Errorf("adjoint: %q has %d parameters: %w", op.Name, op.NumParams(), ErrMultiParamOp)
		}
	}
	return nil
}

// jacobian runs the backward sweep on one device.
func (e *Engine) jacobian(jac []float64, ref []complex128, obs []observable.Observable, tape *circuit.Tape, trainable []int, applyOps bool, tag device.Tag) error {
	lambda, err := statevec.FromData(ref, e.backend, tag)
	if err != nil {
		return err
	}
	if applyOps {
		if err := e.applyAll(lambda, tape); err != nil {
			return err
		}
	}

	// One bra state H_i |lambda> per observable; independent across i.
	states := make([]*statevec.StateVector, len(obs))
	if err := parallel.ForErr(len(obs), func(i int) error {
		states[i] = lambda.Copy()
		return obs[i].ApplyInPlace(states[i])
	}, e.par); err != nil {
		return err
	}

	mu := statevec.New(lambda.NumQubits(), e.backend, tag)
	tpSize := len(trainable)
	tpIdx := tpSize - 1                   // descending cursor into trainable
	curParam := tape.NumParamOps() - 1    // forward-order position among parametric ops
	ops := tape.Ops()

	for opIdx := len(ops) - 1; opIdx >= 0; opIdx-- {
		op := ops[opIdx]
		if op.IsStatePrep() {
			continue
		}
		if tpIdx < 0 {
			break // all requested columns filled
		}

		if err := mu.UpdateFrom(lambda); err != nil {
			return err
		}
		// Undo this operation: lambda becomes the state just before it.
		if err := applyOp(lambda, op, true); err != nil {
			return err
		}

		if op.NumParams() > 0 {
			if curParam == trainable[tpIdx] {
				coeff, err := applyGenerator(mu, op.Name, op.Wires, !op.Inverse)
				if err != nil {
					return err
				}
				if op.Inverse {
					coeff = -coeff
				}
				col := tpIdx
				if err := parallel.ForErr(len(obs), func(i int) error {
					ip, err := states[i].InnerProduct(mu)
					if err != nil {
						return err
					}
					jac[i*tpSize+col] = -2 * coeff * imag(ip)
					return nil
				}, e.par); err != nil {
					return err
				}
				tpIdx--
			}
			curParam--
		}

		// Keep every bra state one step behind lambda.
		if err := parallel.ForErr(len(obs), func(i int) error {
			return applyOp(states[i], op, true)
		}, e.par); err != nil {
			return err
		}
	}
	return nil
}

// Expval returns the expectation value <ref|obs|ref>, optionally
// forward-applying the tape to ref first.
func (e *Engine) Expval(obs observable.Observable, ref []complex128, tape *circuit.Tape, applyOps bool) (float64, error) {
	lambda, err := statevec.FromData(ref, e.backend, device.Tag{})
	if err != nil {
		return 0, err
	}
	if applyOps {
		if err := e.applyAll(lambda, tape); err != nil {
			return 0, err
		}
	}
	h := lambda.Copy()
	if err := obs.ApplyInPlace(h); err != nil {
		return 0, err
	}
	ip, err := lambda.InnerProduct(h)
	if err != nil {
		return 0, err
	}
	return real(ip), nil
}

// applyAll forward-applies the tape; state-preparation sentinels are
// skipped, the reference state already carries them.
func (e *Engine) applyAll(sv *statevec.StateVector, tape *circuit.Tape) error {
	for _, op := range tape.Ops() {
		if op.IsStatePrep() {
			continue
		}
		if err := applyOp(sv, op, false); err != nil {
			return err
		}
	}
	return nil
}

// applyOp applies one operation; invert toggles the operation's own
// inverse flag, yielding the undo of what the tape recorded.
func applyOp(sv *statevec.StateVector, op circuit.Operation, invert bool) error {
	inverse := op.Inverse != invert
	if len(op.Matrix) > 0 {
		return sv.ApplyMatrix(op.Matrix, op.Wires, inverse)
	}
	return sv.ApplyOperation(op.Name, op.Wires, inverse, op.Params)
}
