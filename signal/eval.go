package signal

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvalOn evaluates s at every timestamp in ts, in order. The result has
// the same length and order as ts; element i equals s.At(ts[i]).
//
// Evaluations are independent: no state or memoization is shared across
// timestamps or across repeated subtrees within one walk. Complexity is
// O(len(ts) · size of expression).
func EvalOn(s Signal, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = s.At(t)
	}

	return out
}

// EvalOnConcurrent is EvalOn fanned out over at most workers goroutines.
// Per-timestamp evaluations have no ordering dependency, so the grid is
// split into contiguous chunks and each chunk writes its own slice range;
// the output order and values are identical to EvalOn. workers <= 0 means
// GOMAXPROCS.
//
// Worth it only when len(ts) × expression size is large; for small grids
// EvalOn is faster.
func EvalOnConcurrent(s Signal, ts []float64, workers int) []float64 {
	out := make([]float64, len(ts))
	if len(ts) == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(ts) {
		workers = len(ts)
	}

	chunk := (len(ts) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(ts); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(ts))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = s.At(ts[i])
			}

			return nil
		})
	}
	_ = g.Wait() // evaluation is pure; workers never return an error

	return out
}

// Linspace builds a uniform timestamp grid of n points from `from` to
// `to`, both endpoints included. Returns ErrGridSize when n < 2.
//
//	ts, _ := signal.Linspace(0, 1, 5) // [0 0.25 0.5 0.75 1]
func Linspace(from, to float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("signal: Linspace: n=%d: %w", n, ErrGridSize)
	}

	step := (to - from) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	// Pin the last point to `to` exactly; accumulated float steps drift.
	out[n-1] = to

	return out, nil
}
