// Package device tracks the identity and availability of compute devices.
package device

import (
	"context"
	"fmt"
)

// Tag identifies the device and stream a buffer lives on.
// Two buffers may only participate in the same kernel call when their
// tags are equal.
type Tag struct {
	Device int
	Stream int
}

// String returns a human-readable tag.
func (t Tag) String() string {
	return fmt.Sprintf("device=%d stream=%d", t.Device, t.Stream)
}

// Pool is a process-wide registry of device identifiers.
// Devices are acquired for the duration of one shard of work and must be
// released on every exit path.
type Pool struct {
	free  chan int
	total int
}

// NewPool creates a pool holding device ids [0, n).
func NewPool(n int) (*Pool, error) {
	if n <= 0 {
		return nil, fmt.Errorf("device: pool size must be positive, got %d", n)
	}
	free := make(chan int, n)
	for id := 0; id < n; id++ {
		free <- id
	}
	return &Pool{free: free, total: n}, nil
}

// Acquire blocks until a device is available and returns its id.
// The wait is aborted when ctx is cancelled.
func (p *Pool) Acquire(ctx context.Context) (int, error) {
	select {
	case id := <-p.free:
		return id, nil
	case <-ctx.Done():
		return -1, ctx.Err()
	}
}

// Release returns a device to the pool.
func (p *Pool) Release(id int) {
	if id < 0 || id >= p.total {
		return
	}
	select {
	case p.free <- id:
	default:
		// Double release; the id is already back in the pool.
	}
}

// TotalDevices returns the number of devices managed by the pool.
func (p *Pool) TotalDevices() int {
	return p.total
}

// Available returns the number of currently unacquired devices.
func (p *Pool) Available() int {
	return len(p.free)
}
