package prismesh

import (
	"context"

	"github.com/akmonengine/prismesh/mesh"
)

// BatchOptions controls batch execution. MaxParallel <= 0 means one worker
// per structure (unbounded).
type BatchOptions struct {
	MaxParallel int
}

// BatchResult is one slot of a batch run, aligned with the input order
type BatchResult struct {
	Mesh *mesh.Mesh
	Err  error
}

// MeshBatch runs the pipeline over independent structures on a bounded
// worker pool. Each worker owns its structure's whole pipeline; there is no
// shared mutable mesh state. Results are index-aligned with defs.
//
// One slot's failure never aborts sibling work already in flight; the
// failures are collected into a *BatchError alongside the successful slots.
// External cancellation propagates: in-flight runs stop at their next
// checkpoint and remaining slots resolve to ErrCancelled.
func (m *PrismMesher) MeshBatch(ctx context.Context, defs []PrismStructureDefinition, opts MesherOptions, bopts BatchOptions) ([]BatchResult, error) {
	if ctx == nil {
		panic("prismesh: MeshBatch called with nil context")
	}
	if len(defs) == 0 {
		return nil, nil
	}

	results := make([]BatchResult, len(defs))

	if len(defs) == 1 {
		// Single item: bypass the pool entirely
		out, err := m.MeshContext(ctx, defs[0], opts, nil)
		results[0] = BatchResult{Mesh: out, Err: err}
	} else {
		workers := bopts.MaxParallel
		if workers <= 0 || workers > len(defs) {
			workers = len(defs)
		}

		task(workers, defs, func(i int, def PrismStructureDefinition) {
			out, err := m.MeshContext(ctx, def, opts, nil)
			results[i] = BatchResult{Mesh: out, Err: err}
		})
	}

	failures := make(map[int]error)
	for i, r := range results {
		if r.Err != nil {
			failures[i] = r.Err
		}
	}
	if len(failures) > 0 {
		return results, &BatchError{Failures: failures}
	}
	return results, nil
}
