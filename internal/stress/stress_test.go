package stress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIndependentReturnsOneResultPerWorker(t *testing.T) {
	results, err := RunIndependent(context.Background(), 4, 2, 50)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, i, r.Worker)
		assert.Equal(t, 0, r.FinalLen, "every inserted key was also removed")
		assert.Equal(t, r.Inserted, r.Removed)
	}
}

func TestRunSharedReturnsOneResultPerWorker(t *testing.T) {
	results, err := RunShared(context.Background(), 4, 2, 50)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, i, r.Worker)
	}
}

func TestRunIndependentRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := RunIndependent(ctx, 2, 2, 1000)
	require.NoError(t, err)
	require.Len(t, results, 2)
}
