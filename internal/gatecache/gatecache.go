// Package gatecache caches gate matrices by (name, parameter) so each
// value is uploaded to its device once. The handle type H is backend
// specific: a host slice for the CPU kernel, a device buffer for GPU
// kernels.
package gatecache

import (
	"sync"

	"github.com/aurora-qml/aurora/internal/gates"
)

// Key identifies one cached gate value. Non-parametric gates use param 0.
type Key struct {
	Name  string
	Param float64
}

// Cache stores host matrices alongside their device-resident handles.
// Safe for concurrent use.
type Cache[H any] struct {
	mu     sync.RWMutex
	host   map[Key][]complex128
	dev    map[Key]H
	upload func(matrix []complex128) (H, error)
}

// New creates a cache whose device handles are produced by upload.
func New[H any](upload func(matrix []complex128) (H, error)) *Cache[H] {
	return &Cache[H]{
		host:   make(map[Key][]complex128),
		dev:    make(map[Key]H),
		upload: upload,
	}
}

// PopulateDefaults uploads the fixed (non-parametric) gate set.
func (c *Cache[H]) PopulateDefaults() error {
	for _, name := range []string{
		"Identity", "PauliX", "PauliY", "PauliZ", "Hadamard",
		"S", "T", "CNOT", "CZ", "SWAP", "Toffoli", "CSWAP",
	} {
		m, _ := gates.Fixed(name)
		if _, err := c.Add(name, 0, m); err != nil {
			return err
		}
	}
	return nil
}

// Exists reports whether a gate value is cached.
func (c *Cache[H]) Exists(name string, param float64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.dev[Key{name, param}]
	return ok
}

// Add uploads a host matrix and stores both representations. An existing
// entry is overwritten.
func (c *Cache[H]) Add(name string, param float64, matrix []complex128) (H, error) {
	h, err := c.upload(matrix)
	if err != nil {
		var zero H
		return zero, err
	}
	key := Key{name, param}
	c.mu.Lock()
	c.host[key] = matrix
	c.dev[key] = h
	c.mu.Unlock()
	return h, nil
}

// Device returns the device-resident handle for a cached gate.
func (c *Cache[H]) Device(name string, param float64) (H, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.dev[Key{name, param}]
	return h, ok
}

// Host returns the host matrix for a cached gate.
func (c *Cache[H]) Host(name string, param float64) ([]complex128, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.host[Key{name, param}]
	return m, ok
}

// GetOrAdd returns the cached handle, uploading matrix on a miss.
func (c *Cache[H]) GetOrAdd(name string, param float64, matrix []complex128) (H, error) {
	if h, ok := c.Device(name, param); ok {
		return h, nil
	}
	return c.Add(name, param, matrix)
}

// Len returns the number of cached entries.
func (c *Cache[H]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dev)
}
