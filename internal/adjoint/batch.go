package adjoint

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aurora-qml/aurora/internal/circuit"
	"github.com/aurora-qml/aurora/internal/device"
	"github.com/aurora-qml/aurora/internal/observable"
	"github.com/aurora-qml/aurora/internal/parallel"
)

// span is a half-open observable interval assigned to one device.
type span struct {
	start, end int
}

func (s span) empty() bool { return s.start == s.end }

// partition splits [0, n) into chunks contiguous, possibly-empty
// intervals; the first n%chunks intervals hold one extra element.
func partition(n, chunks int) []span {
	spans := make([]span, chunks)
	base, rem := n/chunks, n%chunks
	start := 0
	for i := range spans {
		size := base
		if i < rem {
			size++
		}
		spans[i] = span{start, start + size}
		start += size
	}
	return spans
}

// BatchedJacobian shards the observable list across the device pool and
// runs the backward sweep once per shard concurrently. Each shard worker
// acquires a device, computes its Jacobian block on private state
// copies with intra-shard fan-out disabled, and releases the device on
// every exit path. Blocks are merged into jac in shard order after all
// workers complete; on error the buffer's contents are undefined.
func (e *Engine) BatchedJacobian(ctx context.Context, jac []float64, ref []complex128, obs []observable.Observable, tape *circuit.Tape, trainable []int, applyOps bool, pool *device.Pool) error {
	if err := validate(jac, len(obs), tape, trainable); err != nil {
		return err
	}

	tpSize := len(trainable)
	spans := partition(len(obs), pool.TotalDevices())
	blocks := make([][]float64, len(spans))

	g, ctx := errgroup.WithContext(ctx)
	for si, sp := range spans {
		if sp.empty() {
			continue
		}
		g.Go(func() error {
			id, err := pool.Acquire(ctx)
			if err != nil {
				return err
			}
			defer pool.Release(id)

			// One device per worker; no nested fan-out.
			worker := &Engine{backend: e.backend, par: parallel.Sequential()}
			block := make([]float64, (sp.end-sp.start)*tpSize)
			if err := worker.jacobian(block, ref, obs[sp.start:sp.end], tape, trainable, applyOps, device.Tag{Device: id}); err != nil {
				return err
			}
			blocks[si] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for si, sp := range spans {
		if sp.empty() {
			continue
		}
		copy(jac[sp.start*tpSize:sp.end*tpSize], blocks[si])
	}
	return nil
}
