package refine

import (
	"context"
	"runtime"
	"sync"

	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
)

// scanJob is a batch of tetrahedron indices to score, adapted from the
// render package's evalReq/evalProcessCh batching: a pool of workers
// pulls batches off a channel instead of one goroutine per tet, keeping
// scheduling overhead low on meshes with many thousands of cells.
type scanJob struct {
	store *mesh.Store
	tets  []int
	out   []qualityScore
	wg    *sync.WaitGroup
}

// qualityScore is one tetrahedron's refinement-relevant measurements.
type qualityScore struct {
	tet              int
	radiusEdgeRatio  float64
	volume           float64
	belowVolumeBound bool
	degenerate       bool
}

var scanCh chan scanJob
var scanOnce sync.Once

func startScanWorkers() {
	scanCh = make(chan scanJob, 64)
	for i := 0; i < runtime.NumCPU(); i++ {
		go func() {
			for job := range scanCh {
				s := job.store
				for i, t := range job.tets {
					tt := &s.Tets[t]
					a, b, c, d := s.Pos(tt.V[0]), s.Pos(tt.V[1]), s.Pos(tt.V[2]), s.Pos(tt.V[3])
					ratio, _ := predicate.RadiusEdgeRatio(a, b, c, d)
					vol := predicate.Volume(a, b, c, d)
					job.out[i] = qualityScore{
						tet:              t,
						radiusEdgeRatio:  ratio,
						volume:           vol,
						belowVolumeBound: tt.MaxVolume > 0 && vol > tt.MaxVolume,
						degenerate:       isDegenerateElement(a, b, c, d),
					}
				}
				job.wg.Done()
			}
		}()
	}
}

// ScanQuality scores every non-ghost, non-deleted, non-excluded
// tetrahedron's quality
// in parallel, batching work across a fixed worker pool and checking
// ctx for cancellation between batches so a scan over a very large mesh
// can be aborted promptly.
func ScanQuality(ctx context.Context, s *mesh.Store) ([]qualityScore, error) {
	scanOnce.Do(startScanWorkers)

	live := make([]int, 0, len(s.Tets))
	for i := range s.Tets {
		if !s.Tets[i].Deleted && !s.Tets[i].Ghost && s.Tets[i].Region != mesh.ExcludedRegion {
			live = append(live, i)
		}
	}

	const batchSize = 256
	results := make([]qualityScore, len(live))
	wg := &sync.WaitGroup{}
	for start := 0; start < len(live); start += batchSize {
		end := start + batchSize
		if end > len(live) {
			end = len(live)
		}
		wg.Add(1)
		scanCh <- scanJob{store: s, tets: live[start:end], out: results[start:end], wg: wg}

		select {
		case <-ctx.Done():
			wg.Wait()
			return results[:end], ctx.Err()
		default:
		}
	}
	wg.Wait()
	return results, nil
}
