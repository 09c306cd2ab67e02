package signal

import (
	"fmt"
	"math"
)

// Window is the half-open active interval [Start, End) of a leaf signal.
// Inside the window the leaf's local rule applies, shifted into
// window-local time τ = t − Start; outside it the leaf is exactly zero.
type Window struct {
	Start float64 // inclusive
	End   float64 // exclusive
}

// Contains reports whether global time t falls inside the window.
// t == Start is active; t == End is not.
func (w Window) Contains(t float64) bool {
	return w.Start <= t && t < w.End
}

// Validate returns ErrInvalidWindow when Start > End or either bound is
// NaN. Construction does not call it: a reversed window is legal and
// permanently zero. Callers wanting fail-fast semantics check explicitly:
//
//	if err := w.Validate(); err != nil { ... }
func (w Window) Validate() error {
	if math.IsNaN(w.Start) || math.IsNaN(w.End) || w.Start > w.End {
		return fmt.Errorf("signal: window [%v, %v): %w", w.Start, w.End, ErrInvalidWindow)
	}

	return nil
}

// funcLeaf gates an arbitrary local rule by a window.
type funcLeaf struct {
	win   Window
	local func(float64) float64
}

// At applies the half-open gate, then the local rule in window-local time.
func (f *funcLeaf) At(t float64) float64 {
	if !f.win.Contains(t) {
		return 0
	}

	return f.local(t - f.win.Start)
}

// Func builds a leaf signal from an arbitrary local rule. Inside the
// window the leaf evaluates local(t − Start); outside it is exactly zero.
// Default window: [0, +Inf).
//
// local must be a pure function of its argument — the algebra assumes
// evaluation has no side effects and may reorder or parallelize calls.
// Func panics on a nil rule (programmer error).
func Func(local func(float64) float64, opts ...Option) Signal {
	if local == nil {
		panic("signal: Func: nil local rule")
	}
	w := defaultFuncWindow()
	for _, opt := range opts {
		opt(&w)
	}

	return &funcLeaf{win: w, local: local}
}
