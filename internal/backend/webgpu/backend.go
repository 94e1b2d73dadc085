// Package webgpu implements the state-vector kernel on GPU via go-webgpu.
// Gate application runs as a WGSL compute shader; amplitudes travel as
// interleaved (re, im) f32 pairs, so results carry single precision.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/aurora-qml/aurora/internal/gatecache"
	"github.com/aurora-qml/aurora/internal/statevec"
)

// Backend implements statevec.Backend with WebGPU compute.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	// Device-resident gate matrices keyed by (name, param).
	gates *gatecache.Cache[*wgpu.Buffer]
}

// New creates a WebGPU kernel backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (backend *Backend, err error) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, instanceErr := wgpu.CreateInstance(nil)
	if instanceErr != nil {
		return nil, fmt.Errorf("webgpu: failed to create instance: %w", instanceErr)
	}
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	b := &Backend{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
	}
	b.gates = gatecache.New(func(m []complex128) (*wgpu.Buffer, error) {
		return b.uploadMatrix(m)
	})
	if err := b.gates.PopulateDefaults(); err != nil {
		b.Release()
		return nil, fmt.Errorf("webgpu: populate gate cache: %w", err)
	}
	return b, nil
}

// IsAvailable checks whether a compatible GPU and drivers are present.
func IsAvailable() bool {
	b, err := New()
	if err != nil {
		return false
	}
	b.Release()
	return true
}

// Release frees all WebGPU resources.
func (b *Backend) Release() {
	b.mu.Lock()
	for _, p := range b.pipelines {
		p.Release()
	}
	for _, s := range b.shaders {
		s.Release()
	}
	b.pipelines = map[string]*wgpu.ComputePipeline{}
	b.shaders = map[string]*wgpu.ShaderModule{}
	b.mu.Unlock()

	if b.queue != nil {
		b.queue.Release()
	}
	if b.device != nil {
		b.device.Release()
	}
	if b.adapter != nil {
		b.adapter.Release()
	}
	if b.instance != nil {
		b.instance.Release()
	}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// ApplyGate applies a named gate using the device-resident matrix cache.
func (b *Backend) ApplyGate(state []complex128, wires []int, name string, param float64, matrix []complex128, adjoint bool) error {
	buf, err := b.gates.GetOrAdd(name, param, matrix)
	if err != nil {
		return fmt.Errorf("webgpu: cache %q: %w", name, err)
	}
	return b.dispatchGate(state, wires, buf, adjoint)
}

// ApplyMatrix applies an explicit matrix, uploaded for this call only.
func (b *Backend) ApplyMatrix(state []complex128, wires []int, matrix []complex128, adjoint bool) error {
	k := len(wires)
	dim := 1 << k
	if len(matrix) != dim*dim {
		return fmt.Errorf("webgpu: %d matrix entries for %d wires: %w", len(matrix), k, statevec.ErrBadMatrix)
	}
	buf, err := b.uploadMatrix(matrix)
	if err != nil {
		return err
	}
	defer buf.Release()
	return b.dispatchGate(state, wires, buf, adjoint)
}

// InnerProduct returns <a|b>, conjugate-linear in a. The reduction runs
// on host: amplitudes are already host-resident between dispatches.
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

// Compile-time check that Backend implements statevec.Backend.
var _ statevec.Backend = (*Backend)(nil)
