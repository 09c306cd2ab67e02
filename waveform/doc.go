// SPDX-License-Identifier: MIT

// Package waveform provides ready-made analytic leaf kinds for the
// signal algebra: sine, rectangular pulse, triangle, linear chirp, ramp
// and step. Each constructor returns a windowed signal.Signal whose
// local rule is a closed-form function of window-local time τ — no
// sampling, no state, no randomness.
//
// 🚀 What lives here?
//
//	Deterministic generators for simulation and control prototyping:
//		• Sine(A, f)          — A·sin(2π f τ)
//		• Pulse(A, f, duty)   — rectangular, A when frac(f τ) < duty
//		• Triangle(A, f)      — A·(1 − |2·frac(f τ) − 1|)
//		• Chirp(A, f0, f1, T) — linear sweep f0→f1 over T, phase-continuous
//		• Ramp(k)             — k·τ
//		• Step(level)         — level inside the window
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/sigalg/signal"
//	  "github.com/katalvlaran/sigalg/waveform"
//	)
//
//	carrier, err := waveform.Sine(1, 50)                         // 50 Hz, active from t=0
//	burst, err := waveform.Sine(1, 50, signal.WithWindow(2, 3))  // one-second 50 Hz burst
//	am, err   := signal.Mul(carrier, envelope)                   // compose like any signal
//
// Windows pass straight through to signal.Func: every kind defaults to
// [0, +Inf) and is exactly zero outside its window. Frequencies are in
// cycles per time unit; all parameters are validated at construction
// (sentinel errors in errors.go), never at evaluation.
package waveform
