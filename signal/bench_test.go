package signal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sigalg/signal"
)

// deepExpr builds a chain of depth alternating composites over a sine
// leaf, a windowed ramp and literals.
func deepExpr(depth int) signal.Signal {
	s := signal.Signal(signal.Func(func(tau float64) float64 { return math.Sin(tau) }))
	ramp := signal.Func(func(tau float64) float64 { return tau }, signal.WithWindow(0, 100))
	for i := 0; i < depth; i++ {
		switch i % 4 {
		case 0:
			s, _ = signal.Add(s, ramp)
		case 1:
			s, _ = signal.Mul(s, 0.5)
		case 2:
			s, _ = signal.Sub(s, 1)
		default:
			s, _ = signal.Div(s, 2)
		}
	}

	return s
}

// BenchmarkAt measures a single-timestamp walk of a 64-node chain.
func BenchmarkAt(b *testing.B) {
	s := deepExpr(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.At(float64(i % 100))
	}
}

// BenchmarkEvalOn measures a sequential batch over 1k timestamps.
func BenchmarkEvalOn(b *testing.B) {
	s := deepExpr(64)
	ts, _ := signal.Linspace(0, 100, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = signal.EvalOn(s, ts)
	}
}

// BenchmarkEvalOnConcurrent measures the fanned-out batch at GOMAXPROCS.
func BenchmarkEvalOnConcurrent(b *testing.B) {
	s := deepExpr(64)
	ts, _ := signal.Linspace(0, 100, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = signal.EvalOnConcurrent(s, ts, 0)
	}
}
