package statevec

// Backend defines the kernel interface a compute device must implement to
// host state-vector simulations.
//
// Implementations:
//   - CPU: reference kernel, pure Go
//   - WebGPU: compute-shader kernel via go-webgpu
//
// All methods operate on dense amplitude buffers of length 2^n. The
// adjoint flag requests application of the conjugate transpose of the
// supplied matrix.
type Backend interface {
	// ApplyMatrix applies a 2^k x 2^k row-major matrix to the given wires.
	ApplyMatrix(state []complex128, wires []int, matrix []complex128, adjoint bool) error

	// ApplyGate applies a named gate. Backends may cache the uploaded
	// matrix under the (name, param) key; the host matrix is always
	// supplied so a cache miss can be filled.
	ApplyGate(state []complex128, wires []int, name string, param float64, matrix []complex128, adjoint bool) error

	// InnerProduct returns <a|b>, conjugate-linear in a.
	InnerProduct(a, b []complex128) complex128

	// ScaleAndAdd computes dst += c * src element-wise.
	ScaleAndAdd(c complex128, src, dst []complex128)

	// Metadata
	Name() string
}
