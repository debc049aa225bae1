package jpegenc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// TransformBlocksParallel runs LevelShift + ForwardDCTFast + Quantize over
// blocks, partitioned into contiguous ranges across workers goroutines, and
// writes each block's result into its own index of the preallocated output
// slice — per §5, workers only ever write their own disjoint index range,
// so the join barrier (errgroup.Wait) is the only synchronization point
// needed before the next, single-threaded stage runs.
//
// A failure in any worker aborts the whole batch; ctx cancellation is
// propagated to the remaining workers but there is no partial recovery
// (§5's stated policy).
func TransformBlocksParallel(ctx context.Context, blocks []Block, table *QuantTable, workers int) ([]*FrequencyBlock, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]*FrequencyBlock, len(blocks))
	if len(blocks) == 0 {
		return out, nil
	}
	if workers > len(blocks) {
		workers = len(blocks)
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(blocks) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(blocks) {
			break
		}
		end := start + chunk
		if end > len(blocks) {
			end = len(blocks)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				b := blocks[i]
				LevelShift(&b)
				ForwardDCTFast(&b)
				out[i] = Quantize(&b, table)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
