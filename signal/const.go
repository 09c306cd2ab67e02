package signal

// constLeaf is the constant signal: one fixed value inside its window.
type constLeaf struct {
	win   Window
	value float64
}

// At returns the fixed value inside the window, zero outside.
func (c *constLeaf) At(t float64) float64 {
	if !c.win.Contains(t) {
		return 0
	}

	return c.value
}

// Const builds a constant leaf signal. Its default window is
// (-Inf, +Inf) — unlike Func, a constant is unconditionally active, so
// it is the canonical target for literal coercion: arithmetic with raw
// numbers behaves as expected regardless of any other operand's window.
//
//	signal.Const(5)                          // 5 at every t
//	signal.Const(5, signal.WithWindow(2, 5)) // 5 on [2,5), 0 elsewhere
func Const(value float64, opts ...Option) Signal {
	w := defaultConstWindow()
	for _, opt := range opts {
		opt(&w)
	}

	return &constLeaf{win: w, value: value}
}
