// Package cpu implements the reference state-vector kernel in pure Go.
package cpu

import (
	"fmt"

	"github.com/aurora-qml/aurora/internal/gatecache"
	"github.com/aurora-qml/aurora/internal/parallel"
	"github.com/aurora-qml/aurora/internal/statevec"
)

// Backend implements statevec.Backend on host memory.
type Backend struct {
	cache *gatecache.Cache[[]complex128]
	par   parallel.Config
}

// New creates a CPU kernel backend with the default gate set cached.
func New() *Backend {
	cache := gatecache.New(func(m []complex128) ([]complex128, error) {
		// Host memory is the device; cache the matrix as-is.
		return m, nil
	})
	if err := cache.PopulateDefaults(); err != nil {
		panic(fmt.Sprintf("cpu: populate gate cache: %v", err))
	}
	return &Backend{cache: cache, par: parallel.DefaultConfig()}
}

// SetParallelism overrides the fan-out configuration for kernel loops.
func (b *Backend) SetParallelism(cfg parallel.Config) {
	b.par = cfg
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "CPU"
}

// ApplyGate applies a named gate, caching its matrix by (name, param).
func (b *Backend) ApplyGate(state []complex128, wires []int, name string, param float64, matrix []complex128, adjoint bool) error {
	cached, err := b.cache.GetOrAdd(name, param, matrix)
	if err != nil {
		return fmt.Errorf("cpu: cache %q: %w", name, err)
	}
	return b.ApplyMatrix(state, wires, cached, adjoint)
}

// ApplyMatrix applies a 2^k x 2^k matrix to the selected bit positions.
func (b *Backend) ApplyMatrix(state []complex128, wires []int, matrix []complex128, adjoint bool) error {
	k := len(wires)
	dim := 1 << k
	if len(matrix) != dim*dim {
		return fmt.Errorf("cpu: %d matrix entries for %d wires: %w", len(matrix), k, statevec.ErrBadMatrix)
	}

	// Amplitude offset for each sub-index pattern; wires[0] is the most
	// significant bit of the sub-index.
	offsets := make([]int, dim)
	for p := 0; p < dim; p++ {
		o := 0
		for j, bit := range wires {
			if p>>(k-1-j)&1 == 1 {
				o |= 1 << bit
			}
		}
		offsets[p] = o
	}

	sorted := make([]int, k)
	copy(sorted, wires)
	sortInts(sorted)

	nBases := len(state) >> k
	parallel.For(nBases, func(t int) {
		base := insertZeroBits(t, sorted)

		amps := make([]complex128, dim)
		for p := 0; p < dim; p++ {
			amps[p] = state[base|offsets[p]]
		}
		for r := 0; r < dim; r++ {
			var acc complex128
			if adjoint {
				for c := 0; c < dim; c++ {
					m := matrix[c*dim+r]
					acc += complex(real(m), -imag(m)) * amps[c]
				}
			} else {
				for c := 0; c < dim; c++ {
					acc += matrix[r*dim+c] * amps[c]
				}
			}
			state[base|offsets[r]] = acc
		}
	}, b.par)

	return nil
}

// InnerProduct returns <a|b>, conjugate-linear in a.
func (b *Backend) InnerProduct(a, other []complex128) complex128 {
	var acc complex128
	for i := range a {
		acc += complex(real(a[i]), -imag(a[i])) * other[i]
	}
	return acc
}

// ScaleAndAdd computes dst += c * src.
func (b *Backend) ScaleAndAdd(c complex128, src, dst []complex128) {
	for i := range dst {
		dst[i] += c * src[i]
	}
}

// insertZeroBits spreads t across the index space leaving zeros at the
// given (ascending) bit positions.
func insertZeroBits(t int, bits []int) int {
	for _, b := range bits {
		low := t & ((1 << b) - 1)
		t = (t>>b)<<(b+1) | low
	}
	return t
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// Compile-time check that Backend implements statevec.Backend.
var _ statevec.Backend = (*Backend)(nil)
