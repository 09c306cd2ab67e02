// SPDX-License-Identifier: MIT
// Package: sigalg/waveform
//
// waveform.go — closed-form analytic leaf kinds over window-local time.
//
// Contract:
//   • Every constructor validates its parameters once and returns a
//     windowed signal.Signal; evaluation itself never fails.
//   • Local rules are pure functions of τ — strict determinism, no
//     global state, O(1) work per evaluation.
//   • Phase math avoids trig where a Mod fraction suffices (pulse,
//     triangle); the chirp keeps its phase continuous across the end of
//     the sweep.

package waveform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigalg/signal"
)

// tau is 2π, precomputed once for the phase math.
const tau = 2.0 * math.Pi

// Sine builds A·sin(2π f τ). Frequency f is in cycles per time unit.
func Sine(amp, freq float64, opts ...signal.Option) (signal.Signal, error) {
	if err := checkAmp(amp); err != nil {
		return nil, err
	}
	if err := checkFreq(freq); err != nil {
		return nil, err
	}

	omega := tau * freq

	return signal.Func(func(t float64) float64 {
		return amp * math.Sin(omega*t)
	}, opts...), nil
}

// Pulse builds a rectangular wave: A when the phase fraction
// frac(f·τ) < duty, 0 otherwise. duty must lie in [0, 1]; duty=0.5 is a
// square wave, duty=1 a windowed constant.
func Pulse(amp, freq, duty float64, opts ...signal.Option) (signal.Signal, error) {
	if err := checkAmp(amp); err != nil {
		return nil, err
	}
	if err := checkFreq(freq); err != nil {
		return nil, err
	}
	if math.IsNaN(duty) || duty < 0 || duty > 1 {
		return nil, fmt.Errorf("waveform: Pulse: duty=%v: %w", duty, ErrDuty)
	}

	return signal.Func(func(t float64) float64 {
		if math.Mod(t*freq, 1) < duty {
			return amp
		}

		return 0
	}, opts...), nil
}

// Triangle builds A·(1 − |2·frac(f·τ) − 1|): a 0→A→0 triangle per period,
// no trig involved.
func Triangle(amp, freq float64, opts ...signal.Option) (signal.Signal, error) {
	if err := checkAmp(amp); err != nil {
		return nil, err
	}
	if err := checkFreq(freq); err != nil {
		return nil, err
	}

	return signal.Func(func(t float64) float64 {
		frac := math.Mod(t*freq, 1)

		return amp * (1 - math.Abs(2*frac-1))
	}, opts...), nil
}

// Chirp builds a linear frequency sweep from f0 to f1 over the first
// `sweep` time units of the window:
//
//	φ(τ) = 2π·(f0·τ + k·τ²/2),  k = (f1 − f0) / sweep,  τ ≤ sweep
//
// Past the sweep the instantaneous frequency holds at f1 and the phase
// continues from φ(sweep) — no discontinuity at the seam.
func Chirp(amp, f0, f1, sweep float64, opts ...signal.Option) (signal.Signal, error) {
	if err := checkAmp(amp); err != nil {
		return nil, err
	}
	if err := checkFreq(f0); err != nil {
		return nil, err
	}
	if err := checkFreq(f1); err != nil {
		return nil, err
	}
	if math.IsNaN(sweep) || math.IsInf(sweep, 0) || sweep <= 0 {
		return nil, fmt.Errorf("waveform: Chirp: sweep=%v: %w", sweep, ErrSweep)
	}

	k := (f1 - f0) / sweep
	phiEnd := math.Pi * (f0 + f1) * sweep // φ(sweep) in closed form

	return signal.Func(func(t float64) float64 {
		var phi float64
		if t <= sweep {
			phi = tau * (f0*t + 0.5*k*t*t)
		} else {
			phi = phiEnd + tau*f1*(t-sweep)
		}

		return amp * math.Sin(phi)
	}, opts...), nil
}

// Ramp builds slope·τ. Any finite slope is legal, including zero and
// negatives, so construction cannot fail.
func Ramp(slope float64, opts ...signal.Option) signal.Signal {
	return signal.Func(func(t float64) float64 { return slope * t }, opts...)
}

// Step builds a level that switches on with the window. It differs from
// signal.Const only in its default window: [0, +Inf) rather than
// always-active, i.e. a Heaviside step scaled by level.
func Step(level float64, opts ...signal.Option) signal.Signal {
	return signal.Func(func(float64) float64 { return level }, opts...)
}

// checkAmp validates an amplitude parameter.
func checkAmp(amp float64) error {
	if math.IsNaN(amp) || math.IsInf(amp, 0) || amp <= 0 {
		return fmt.Errorf("waveform: amplitude=%v: %w", amp, ErrAmplitude)
	}

	return nil
}

// checkFreq validates a frequency parameter.
func checkFreq(freq float64) error {
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return fmt.Errorf("waveform: frequency=%v: %w", freq, ErrFrequency)
	}

	return nil
}
