package prismesh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchDefs(t *testing.T, n int) []PrismStructureDefinition {
	t.Helper()
	defs := make([]PrismStructureDefinition, n)
	for i := range defs {
		size := float64(4 + i)
		defs[i] = NewPrismStructure(rectPolygon(t, 0, 0, size, size), 0, 2)
	}
	return defs
}

func TestMeshBatchOrderPreserved(t *testing.T) {
	defs := batchDefs(t, 5)
	opts := mustOptions(t, NewOptionsBuilder().XYEdgeLength(1).ZEdgeLength(1))

	results, err := (&PrismMesher{}).MeshBatch(context.Background(), defs, opts, BatchOptions{MaxParallel: 2})
	require.NoError(t, err)
	require.Len(t, results, 5)

	// Larger footprints mesh into strictly more quads, slot order must match
	prev := 0
	for i, r := range results {
		require.NoError(t, r.Err, "slot %d", i)
		require.NotNil(t, r.Mesh)
		assert.Greater(t, r.Mesh.QuadCount(), prev)
		prev = r.Mesh.QuadCount()
	}
}

func TestMeshBatchPartialFailure(t *testing.T) {
	defs := batchDefs(t, 3)
	defs[1] = NewPrismStructure(rectPolygon(t, 0, 0, 4, 4), 3, 1) // invalid range

	results, err := (&PrismMesher{}).MeshBatch(context.Background(), defs, mustOptions(t, NewOptionsBuilder()), BatchOptions{})
	require.Len(t, results, 3)

	var berr *BatchError
	require.ErrorAs(t, err, &berr)
	require.Len(t, berr.Failures, 1)

	var verr *ValidationError
	assert.ErrorAs(t, berr.Failures[1], &verr)

	// Sibling slots still succeeded
	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Mesh)
	assert.NoError(t, results[2].Err)
	assert.NotNil(t, results[2].Mesh)
	assert.Nil(t, results[1].Mesh)
}

func TestMeshBatchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	defs := make([]PrismStructureDefinition, 4)
	for i := range defs {
		defs[i] = NewPrismStructure(rectPolygon(t, 0, 0, 100, 100), 0, 10)
	}
	opts := mustOptions(t, NewOptionsBuilder().XYEdgeLength(1).ZEdgeLength(1))

	results, err := (&PrismMesher{}).MeshBatch(ctx, defs, opts, BatchOptions{MaxParallel: 2})
	require.Len(t, results, 4)

	var berr *BatchError
	require.ErrorAs(t, err, &berr)
	for i, r := range results {
		assert.ErrorIs(t, r.Err, ErrCancelled, "slot %d", i)
		assert.Nil(t, r.Mesh)
	}
}

func TestMeshBatchSingleItemBypass(t *testing.T) {
	defs := batchDefs(t, 1)
	results, err := (&PrismMesher{}).MeshBatch(context.Background(), defs, mustOptions(t, NewOptionsBuilder()), BatchOptions{MaxParallel: 8})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotNil(t, results[0].Mesh)
}

func TestMeshBatchEmpty(t *testing.T) {
	results, err := (&PrismMesher{}).MeshBatch(context.Background(), nil, mustOptions(t, NewOptionsBuilder()), BatchOptions{})
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestMeshBatchUnboundedWorkers(t *testing.T) {
	defs := batchDefs(t, 3)
	results, err := (&PrismMesher{}).MeshBatch(context.Background(), defs, mustOptions(t, NewOptionsBuilder()), BatchOptions{MaxParallel: 0})
	require.NoError(t, err)
	for _, r := range results {
		assert.NotNil(t, r.Mesh)
	}
}

func TestMeshBatchNilContextPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = (&PrismMesher{}).MeshBatch(nil, nil, MesherOptions{}, BatchOptions{}) //nolint:staticcheck
	})
}
