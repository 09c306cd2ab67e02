package signal_test

import (
	"testing"

	"github.com/katalvlaran/sigalg/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvalOn_MatchesSingleCalls verifies batch evaluation is exactly the
// element-wise sequence of single-timestamp calls, same order and length.
func TestEvalOn_MatchesSingleCalls(t *testing.T) {
	s, err := signal.Sub(
		signal.Const(1, signal.WithWindow(0, 2)),
		signal.Const(1, signal.WithWindow(1, 3)),
	)
	require.NoError(t, err)

	ts := []float64{3, 0, 2.5, 1, 0.5} // deliberately unsorted
	got := signal.EvalOn(s, ts)

	require.Len(t, got, len(ts), "batch output must match input length")
	for i, tau := range ts {
		assert.Equal(t, s.At(tau), got[i], "batch element %d must equal s.At(%v)", i, tau)
	}
}

// TestEvalOn_Empty checks the degenerate grid.
func TestEvalOn_Empty(t *testing.T) {
	got := signal.EvalOn(signal.Const(1), nil)
	assert.Empty(t, got, "empty grid must yield empty output")
}

// TestEvalOnConcurrent_MatchesSequential checks the parallel variant is
// value- and order-identical to EvalOn across worker counts.
func TestEvalOnConcurrent_MatchesSequential(t *testing.T) {
	a := signal.Func(func(tau float64) float64 { return tau * tau }, signal.WithWindow(0, 50))
	s, err := signal.Add(a, signal.Const(1))
	require.NoError(t, err)

	ts, err := signal.Linspace(-10, 60, 501)
	require.NoError(t, err)
	want := signal.EvalOn(s, ts)

	for _, workers := range []int{0, 1, 2, 7, 501, 10_000} {
		got := signal.EvalOnConcurrent(s, ts, workers)
		assert.Equal(t, want, got, "workers=%d must preserve order and values", workers)
	}

	assert.Empty(t, signal.EvalOnConcurrent(s, nil, 4), "empty grid must yield empty output")
}

// TestLinspace pins endpoints, spacing and the ErrGridSize contract.
func TestLinspace(t *testing.T) {
	ts, err := signal.Linspace(0, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, ts, "uniform grid with inclusive endpoints")

	ts, err = signal.Linspace(2, -2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -2}, ts, "descending grids are legal")

	_, err = signal.Linspace(0, 1, 1)
	assert.ErrorIs(t, err, signal.ErrGridSize, "n=1 must be rejected")

	_, err = signal.Linspace(0, 1, 0)
	assert.ErrorIs(t, err, signal.ErrGridSize, "n=0 must be rejected")
}

// TestEvalOn_NoMemoization confirms a shared subtree is recomputed per
// timestamp and per occurrence: 2 occurrences × 3 timestamps = 6 calls.
func TestEvalOn_NoMemoization(t *testing.T) {
	calls := 0
	probe := signal.Func(func(float64) float64 {
		calls++

		return 1
	})
	s, err := signal.Add(probe, probe)
	require.NoError(t, err)

	_ = signal.EvalOn(s, []float64{0, 1, 2})
	assert.Equal(t, 6, calls, "no memoization across timestamps or aliases")
}
