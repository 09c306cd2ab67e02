// SPDX-License-Identifier: MIT

package waveform

import "errors"

var (
	// ErrAmplitude indicates a non-positive or non-finite amplitude.
	ErrAmplitude = errors.New("waveform: amplitude must be positive and finite")
	// ErrFrequency indicates a non-positive or non-finite frequency.
	ErrFrequency = errors.New("waveform: frequency must be positive and finite")
	// ErrDuty indicates a duty cycle outside [0, 1].
	ErrDuty = errors.New("waveform: duty cycle must lie in [0, 1]")
	// ErrSweep indicates a non-positive or non-finite chirp sweep duration.
	ErrSweep = errors.New("waveform: sweep duration must be positive and finite")
)
