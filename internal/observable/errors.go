package observable

import "errors"

// Configuration errors raised during observable construction.
var (
	ErrOverlappingWires  = errors.New("all wires in a tensor product must be disjoint")
	ErrCoeffTermMismatch = errors.New("coefficient and term counts must match")
)
