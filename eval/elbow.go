package eval

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gocluster/kmeans"
)

// ElbowPoint pairs a cluster count with the final inertia of a fit at
// that count.
type ElbowPoint struct {
	K       int
	Inertia float64
}

// ElbowCurve fits an independent engine for every k in 1..maxK and
// reports the final inertia of each, ordered by k. The point of
// diminishing inertia reduction suggests a cluster count.
//
// Each engine is single-threaded as usual; the per-k fits run
// concurrently, bounded by GOMAXPROCS. optFns are applied to every
// engine, so WithSeed makes the whole curve reproducible. Any fit error
// aborts the curve and is returned as-is.
func ElbowCurve(points [][]float64, maxK int, method kmeans.InitMethod, optFns ...kmeans.Option) ([]ElbowPoint, error) {
	if maxK < 1 {
		return nil, fmt.Errorf("%w: maxK must be at least 1, got %d", kmeans.ErrInvalidConfig, maxK)
	}

	curve := make([]ElbowPoint, maxK)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for k := 1; k <= maxK; k++ {
		k := k
		g.Go(func() error {
			km, err := kmeans.New(k, optFns...)
			if err != nil {
				return err
			}
			if err := km.Fit(points, method); err != nil {
				return err
			}
			inertia, err := km.Inertia()
			if err != nil {
				return err
			}
			curve[k-1] = ElbowPoint{K: k, Inertia: inertia}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return curve, nil
}
