// Package observable models the measurement operators whose expectation
// values the adjoint engine differentiates. The four variants (Named,
// Hermitian, TensorProd, Hamiltonian) are immutable and tree-shaped.
package observable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aurora-qml/aurora/internal/statevec"
)

// Observable is a measurement operator applied to state-vector copies
// during the adjoint sweep. Implementations never mutate after
// construction. Equality is structural: two observables are equal only
// when they are the same concrete variant with equal fields.
type Observable interface {
	// ApplyInPlace mutates a state copy to represent the observable's action.
	ApplyInPlace(sv *statevec.StateVector) error

	// Wires returns the wires the observable acts on.
	Wires() []int

	// Name returns the canonical name, including wires.
	Name() string

	// Equal tests structural equality; cross-variant comparisons are
	// always unequal.
	Equal(other Observable) bool
}

// Named models named observables (PauliX, PauliY, PauliZ, Hadamard, ...).
type Named struct {
	name   string
	wires  []int
	params []float64
}

// NewNamed creates a named observable on the given wires.
func NewNamed(name string, wires []int, params ...float64) *Named {
	return &Named{name: name, wires: cloneInts(wires), params: append([]float64(nil), params...)}
}

// ApplyInPlace applies the named gate to the state.
func (o *Named) ApplyInPlace(sv *statevec.StateVector) error {
	return sv.ApplyOperation(o.name, o.wires, false, o.params)
}

// Wires returns the observable's wires.
func (o *Named) Wires() []int { return cloneInts(o.wires) }

// Name returns the observable name with wires, e.g. "PauliZ[1]".
func (o *Named) Name() string {
	return fmt.Sprintf("%s%v", o.name, o.wires)
}

// Equal reports field-wise equality with another Named observable.
func (o *Named) Equal(other Observable) bool {
	b, ok := other.(*Named)
	if !ok {
		return false
	}
	return o.name == b.name && intsEqual(o.wires, b.wires) && floatsEqual(o.params, b.params)
}

// Hermitian models an observable given as a dense row-major matrix.
type Hermitian struct {
	matrix []complex128
	wires  []int
}

// NewHermitian creates a dense-matrix observable on the given wires.
func NewHermitian(matrix []complex128, wires []int) *Hermitian {
	return &Hermitian{matrix: append([]complex128(nil), matrix...), wires: cloneInts(wires)}
}

// Matrix returns the observable's row-major matrix.
func (o *Hermitian) Matrix() []complex128 {
	return append([]complex128(nil), o.matrix...)
}

// ApplyInPlace applies the matrix to the state.
func (o *Hermitian) ApplyInPlace(sv *statevec.StateVector) error {
	return sv.ApplyMatrix(o.matrix, o.wires, false)
}

// Wires returns the observable's wires.
func (o *Hermitian) Wires() []int { return cloneInts(o.wires) }

// Name returns "Hermitian".
func (o *Hermitian) Name() string { return "Hermitian" }

// Equal reports field-wise equality with another Hermitian observable.
func (o *Hermitian) Equal(other Observable) bool {
	b, ok := other.(*Hermitian)
	if !ok {
		return false
	}
	if !intsEqual(o.wires, b.wires) || len(o.matrix) != len(b.matrix) {
		return false
	}
	for i := range o.matrix {
		if o.matrix[i] != b.matrix[i] {
			return false
		}
	}
	return true
}

// TensorProd is a tensor product of sub-observables on disjoint wires.
type TensorProd struct {
	obs      []Observable
	allWires []int
}

// NewTensorProd creates a tensor product. Construction fails with
// ErrOverlappingWires when any two members share a wire.
func NewTensorProd(obs ...Observable) (*TensorProd, error) {
	seen := make(map[int]struct{})
	for _, ob := range obs {
		for _, w := range ob.Wires() {
			if _, dup := seen[w]; dup {
				return nil, fmt.Errorf("observable: wire %d: %w", w, ErrOverlappingWires)
			}
			seen[w] = struct{}{}
		}
	}
	all := make([]int, 0, len(seen))
	for w := range seen {
		all = append(all, w)
	}
	sort.Ints(all)
	return &TensorProd{obs: append([]Observable(nil), obs...), allWires: all}, nil
}

// ApplyInPlace applies every member in order; wires are disjoint, so the
// order does not matter.
func (o *TensorProd) ApplyInPlace(sv *statevec.StateVector) error {
	for _, ob := range o.obs {
		if err := ob.ApplyInPlace(sv); err != nil {
			return err
		}
	}
	return nil
}

// Wires returns the sorted union of member wires.
func (o *TensorProd) Wires() []int { return cloneInts(o.allWires) }

// Name joins member names with " @ ".
func (o *TensorProd) Name() string {
	names := make([]string, len(o.obs))
	for i, ob := range o.obs {
		names[i] = ob.Name()
	}
	return strings.Join(names, " @ ")
}

// Size returns the number of members.
func (o *TensorProd) Size() int { return len(o.obs) }

// Equal reports member-wise equality with another TensorProd.
func (o *TensorProd) Equal(other Observable) bool {
	b, ok := other.(*TensorProd)
	if !ok || len(o.obs) != len(b.obs) {
		return false
	}
	for i := range o.obs {
		if !o.obs[i].Equal(b.obs[i]) {
			return false
		}
	}
	return true
}

// Hamiltonian is a real-weighted sum of sub-observables.
type Hamiltonian struct {
	coeffs []float64
	terms  []Observable
}

// NewHamiltonian creates a Hamiltonian. Construction fails with
// ErrCoeffTermMismatch when the lists differ in length.
func NewHamiltonian(coeffs []float64, terms []Observable) (*Hamiltonian, error) {
	if len(coeffs) != len(terms) {
		return nil, fmt.Errorf("observable: %d coefficients for %d terms: %w",
			len(coeffs), len(terms), ErrCoeffTermMismatch)
	}
	return &Hamiltonian{
		coeffs: append([]float64(nil), coeffs...),
		terms:  append([]Observable(nil), terms...),
	}, nil
}

// ApplyInPlace accumulates coeff-weighted term applications into a zero
// buffer and writes the result back. Costs one full-length copy and one
// vector add per term.
func (o *Hamiltonian) ApplyInPlace(sv *statevec.StateVector) error {
	acc := statevec.Zeros(sv.NumQubits(), sv.Backend(), sv.Tag())
	for i, term := range o.terms {
		tmp := sv.Copy()
		if err := term.ApplyInPlace(tmp); err != nil {
			return err
		}
		if err := acc.ScaleAndAdd(complex(o.coeffs[i], 0), tmp); err != nil {
			return err
		}
	}
	return sv.UpdateFrom(acc)
}

// Wires returns the sorted union of term wires.
func (o *Hamiltonian) Wires() []int {
	seen := make(map[int]struct{})
	for _, term := range o.terms {
		for _, w := range term.Wires() {
			seen[w] = struct{}{}
		}
	}
	all := make([]int, 0, len(seen))
	for w := range seen {
		all = append(all, w)
	}
	sort.Ints(all)
	return all
}

// Name renders the coefficients and term names.
func (o *Hamiltonian) Name() string {
	names := make([]string, len(o.terms))
	for i, term := range o.terms {
		names[i] = term.Name()
	}
	return fmt.Sprintf("Hamiltonian: { 'coeffs' : %v, 'observables' : [%s]}",
		o.coeffs, strings.Join(names, ", "))
}

// Equal reports coefficient- and term-wise equality with another Hamiltonian.
func (o *Hamiltonian) Equal(other Observable) bool {
	b, ok := other.(*Hamiltonian)
	if !ok || !floatsEqual(o.coeffs, b.coeffs) || len(o.terms) != len(b.terms) {
		return false
	}
	for i := range o.terms {
		if !o.terms[i].Equal(b.terms[i]) {
			return false
		}
	}
	return true
}

func cloneInts(s []int) []int {
	return append([]int(nil), s...)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
