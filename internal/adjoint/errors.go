package adjoint

import "errors"

// Sentinel errors for Jacobian computation.
var (
	// ErrEmptyTrainableParams is returned when no trainable parameters
	// are provided.
	ErrEmptyTrainableParams = errors.New("no trainable parameters provided")

	// ErrMultiParamOp is returned for operations with more than one
	// numeric parameter; the adjoint method is undefined for them.
	ErrMultiParamOp = errors.New("operation is not supported using the adjoint differentiation method")

	// ErrUnknownGenerator is returned when a parametric gate has no
	// registered generator.
	ErrUnknownGenerator = errors.New("no generator registered for operation")

	// ErrJacobianSize is returned when the preallocated output buffer is
	// too small for observables x trainable parameters.
	ErrJacobianSize = errors.New("jacobian buffer too small")

	// ErrBadTrainableParams is returned when trainable-parameter
	// positions are not ascending or fall outside the parametric
	// operations of the tape.
	ErrBadTrainableParams = errors.New("trainable parameters must be ascending positions among parametric operations")
)
