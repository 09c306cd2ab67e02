// Package signal: functional configuration of leaf windows.
//
// Options follow the usual shape: constructors take ...Option and apply
// them over the leaf's default window. Defaults:
//   - Func:  [0, +Inf)        — active from local origin onward
//   - Const: (-Inf, +Inf)     — unconditionally active, so raw literals
//     behave as plain numbers regardless of any other operand's window
package signal

import "math"

// Option mutates a leaf's window during construction. Safe to apply
// repeatedly; the last write wins.
type Option func(*Window)

// WithStart sets the inclusive start of the active window.
func WithStart(t float64) Option {
	return func(w *Window) { w.Start = t }
}

// WithEnd sets the exclusive end of the active window.
func WithEnd(t float64) Option {
	return func(w *Window) { w.End = t }
}

// WithWindow sets both bounds of the active window [start, end).
// A reversed window (start > end) is accepted and evaluates as
// permanently zero; use Window.Validate to reject it explicitly.
func WithWindow(start, end float64) Option {
	return func(w *Window) { w.Start, w.End = start, end }
}

// defaultFuncWindow is the Func leaf default: active from 0 onward.
func defaultFuncWindow() Window {
	return Window{Start: 0, End: math.Inf(1)}
}

// defaultConstWindow is the Const leaf default: active everywhere.
func defaultConstWindow() Window {
	return Window{Start: math.Inf(-1), End: math.Inf(1)}
}
