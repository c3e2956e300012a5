package seamcarver

import (
	"github.com/esimov/seamcarver/utils"
	"golang.org/x/sync/errgroup"
)

// chunksPerWorker is the number of chunks queued for every worker.
const chunksPerWorker = 4

// parallelRows splits the [0, n) range into contiguous chunks and calls fn for each of them
// on at most workers goroutines. With a single worker fn is called inline over the whole range.
// Every index is visited exactly once, so fn must only write to the slots of its own chunk.
func parallelRows(n, workers int, fn func(start, end int)) {
	if workers <= 1 || n < 2 {
		fn(0, n)
		return
	}
	workers = utils.Min(workers, n)
	chunks := utils.Min(workers*chunksPerWorker, n)
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += size {
		start := start
		end := utils.Min(start+size, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	// The workers never fail, Wait is only a join point.
	_ = g.Wait()
}
