// Package circuit provides the immutable operations tape describing a
// quantum circuit.
package circuit

// State-preparation sentinel operations. They set the initial state and
// are never undone or differentiated by the adjoint sweep.
const (
	QubitStateVector = "QubitStateVector"
	BasisState       = "BasisState"
)

// Operation is one recorded gate application. At most one numeric
// parameter is meaningful to the adjoint differentiation method; Matrix
// optionally carries an explicit row-major unitary for custom gates.
type Operation struct {
	Name    string
	Params  []float64
	Wires   []int
	Inverse bool
	Matrix  []complex128
}

// NumParams returns the number of numeric parameters.
func (op Operation) NumParams() int { return len(op.Params) }

// IsStatePrep reports whether the operation sets the initial state.
func (op Operation) IsStatePrep() bool {
	return op.Name == QubitStateVector || op.Name == BasisState
}

// Tape is an ordered, immutable record of operations forming a circuit.
type Tape struct {
	ops         []Operation
	numParamOps int
}

// NewTape records the given operations. The slice is copied; the tape
// never changes after construction.
func NewTape(ops ...Operation) *Tape {
	recorded := make([]Operation, len(ops))
	copy(recorded, ops)
	n := 0
	for _, op := range recorded {
		if op.NumParams() > 0 && !op.IsStatePrep() {
			n++
		}
	}
	return &Tape{ops: recorded, numParamOps: n}
}

// Ops returns the recorded operations in forward order.
func (t *Tape) Ops() []Operation { return t.ops }

// Len returns the number of operations.
func (t *Tape) Len() int { return len(t.ops) }

// NumParamOps returns the number of parametric operations, the index
// space that trainable-parameter positions refer to.
func (t *Tape) NumParamOps() int { return t.numParamOps }
