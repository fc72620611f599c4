// Package stress drives many trees concurrently to exercise the tree's
// one guarantee about concurrency: independent trees never share state, so
// goroutines each owning one tree need no external lock at all. A --shared
// mode instead drives a single SynchronizedTree from every goroutine, to
// exercise the lock wrapper itself.
package stress

import (
	"context"

	"github.com/go-faker/faker/v4"
	"golang.org/x/sync/errgroup"

	"bset/internal/btree"
)

// Result summarizes one worker's pass over its tree.
type Result struct {
	Worker   int
	Inserted int
	Removed  int
	FinalLen int
}

// RunIndependent spawns workers goroutines, each building and driving its
// own tree of the given degree for opsPerWorker operations, and returns one
// Result per worker in worker order.
func RunIndependent(ctx context.Context, workers, degree, opsPerWorker int) ([]Result, error) {
	results := make([]Result, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			tr := btree.NewTree[string](degree)
			results[w] = driveOne(ctx, w, tr, opsPerWorker)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunShared spawns workers goroutines that all drive the same
// SynchronizedTree, returning one Result per worker.
func RunShared(ctx context.Context, workers, degree, opsPerWorker int) ([]Result, error) {
	shared := btree.NewSynchronizedTree(btree.NewTree[string](degree))
	results := make([]Result, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			results[w] = driveShared(ctx, w, shared, opsPerWorker)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func driveOne(ctx context.Context, worker int, tr *btree.Tree[string], ops int) Result {
	r := Result{Worker: worker}
	keys := make([]string, 0, ops)
	for i := 0; i < ops; i++ {
		if ctx.Err() != nil {
			break
		}
		k := faker.Word()
		keys = append(keys, k)
		if tr.Insert(k) {
			r.Inserted++
		}
	}
	for _, k := range keys {
		if ctx.Err() != nil {
			break
		}
		if tr.Remove(k) {
			r.Removed++
		}
	}
	r.FinalLen = tr.Len()
	return r
}

func driveShared(ctx context.Context, worker int, tr *btree.SynchronizedTree[string], ops int) Result {
	r := Result{Worker: worker}
	keys := make([]string, 0, ops)
	for i := 0; i < ops; i++ {
		if ctx.Err() != nil {
			break
		}
		k := faker.Word()
		keys = append(keys, k)
		if tr.Insert(k) {
			r.Inserted++
		}
	}
	for _, k := range keys {
		if ctx.Err() != nil {
			break
		}
		if tr.Remove(k) {
			r.Removed++
		}
	}
	r.FinalLen = tr.Len()
	return r
}
