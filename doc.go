// Package sigalg is a small algebra for composing scalar, time-domain
// signals — pure functions of time that can be added, subtracted,
// multiplied, divided and windowed to build composite signals lazily,
// then evaluated at arbitrary timestamps.
//
// 🚀 What is sigalg?
//
//	A minimal, in-memory combinator library for simulation and
//	control-prototyping code:
//		• Leaf signals: constants, arbitrary local rules, analytic waveforms
//		• Combinators: +, −, ×, ÷ over signals and raw numeric literals
//		• Windowing: every leaf carries a half-open active interval [start, end)
//		• Evaluation: demand-driven, at one timestamp or over a whole grid
//
// ✨ Why choose sigalg?
//
//   - Lazy by construction — building an expression never evaluates it
//   - Immutable nodes — evaluate the same tree from many goroutines freely
//   - Exact gating — t == start is active, t == end is not; adjacent
//     windows stitch end-to-end with no double-counted instant
//   - Pure Go core — errors are returned, never logged or panicked
//
// Everything lives in two subpackages:
//
//	signal/   — Signal, Window, Const, Func, Add/Sub/Mul/Div, EvalOn
//	waveform/ — sine, pulse, triangle, chirp, ramp, step leaf kinds
//
// Quick taste:
//
//	a := signal.Const(2)
//	b := signal.Const(3, signal.WithWindow(0, 10))
//	s, _ := signal.Add(a, b)
//	s.At(4)   // 5 — both active
//	s.At(12)  // 2 — b's window has closed
//
// Dive into README.md and examples/ for end-to-end scenarios.
//
//	go get github.com/katalvlaran/sigalg/signal
package sigalg
