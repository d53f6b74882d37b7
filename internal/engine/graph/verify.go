package graph

import (
	"context"
	"runtime"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Verify audits a loaded snapshot against its structural invariants: every
// node's identity must round-trip through the index, and every edge target
// must reference a node inside the snapshot. Construction already guarantees
// both, so a failure here means the snapshot was corrupted after being built.
// The key space is split across workers; zero workers means one per CPU.
func Verify(ctx context.Context, pg *domain.PreviousGraph, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	nodeCount := pg.NodeCount()
	if nodeCount == 0 {
		return nil
	}
	if workers > nodeCount {
		workers = nodeCount
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (nodeCount + workers - 1) / workers

	for start := 0; start < nodeCount; start += chunk {
		end := min(start+chunk, nodeCount)

		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				key := domain.NodeIndex(i) //nolint:gosec // bounded by NodeCount

				roundTrip, err := pg.IndexOf(pg.NodeAt(key))
				if err != nil {
					return zerr.With(zerr.Wrap(err, "node identity does not round-trip"), "key", i)
				}
				if roundTrip != key {
					return zerr.With(zerr.With(zerr.With(domain.ErrCorruptGraphData,
						"key", i),
						"round_trip_key", uint32(roundTrip)),
						"reason", "index mapping out of sync")
				}

				for _, target := range pg.EdgeTargets(key) {
					if int(target) >= nodeCount {
						return zerr.With(zerr.With(zerr.With(domain.ErrCorruptGraphData,
							"key", i),
							"edge_target", uint32(target)),
							"node_count", nodeCount)
					}
				}
			}
			return nil
		})
	}

	return g.Wait()
}
