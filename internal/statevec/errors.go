package statevec

import "errors"

// Sentinel errors for state-vector operations.
var (
	ErrDeviceMismatch = errors.New("state vectors live on different devices")
	ErrLengthMismatch = errors.New("state vectors have different lengths")
	ErrUnknownGate    = errors.New("unknown gate")
	ErrInvalidLength  = errors.New("amplitude buffer length must be a power of two")
	ErrBadMatrix      = errors.New("matrix dimension does not match wire count")
	ErrWireOutOfRange = errors.New("wire index out of range")
)
