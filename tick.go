// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//
//
// Package tick generates a selectable 50Hz or 60Hz square wave with a 50%
// duty cycle, suitable as a replacement PSU tick signal for Amiga 1000, 2000
// and 3000 mainboards.
//
// The wave is timed against a free-running hardware counter incrementing at a
// fixed rate, with the frequency selected by a digital input sampled on every
// iteration of the generator loop.
//
// Example of use:
//
// 	g := tick.New(counter, selectPin, tickPin)
// 	g.Run()
//
// The decision logic is pure and the hardware is abstracted behind the
// Counter, Input and Output contracts, so the generator can be driven against
// the in-memory doubles in the sim package as easily as against real pins.
// Adapters for particular boards are provided by the rpi and pico packages.
//
// Note on accuracy: the period lengths are integer tick counts, and the 60Hz
// count generally does not divide evenly.  It is rounded down, never up, so
// the high-frequency output runs fractionally above 60Hz.  The error is a
// fraction of a microsecond per cycle and accumulates linearly - it is not
// corrected.
//
package tick

// Level represents the high (true) or low (false) level of the tick signal,
// and of the frequency select input.
type Level bool

// Level of the signal, High / Low
const (
	Low  Level = false
	High Level = true
)

// Counter rate and period lengths for the reference design, which prescales a
// 16MHz base clock down to 2MHz so a full period fits within a 16-bit counter.
const (
	// DefaultRate is the reference counter rate in Hz.
	DefaultRate = 2000000

	// Ticks50Hz is the number of counter ticks in one 50Hz period at
	// DefaultRate.  Exact.
	Ticks50Hz = 40000

	// Ticks60Hz is the number of counter ticks in one 60Hz period at
	// DefaultRate.  The exact value is 33333⅓ and is rounded down, so the
	// output undershoots the period by a sixth of a microsecond per cycle.
	Ticks60Hz = 33333
)

// Periods holds the two selectable period lengths, in counter ticks.
type Periods struct {
	T50 uint32
	T60 uint32
}

// PeriodsAt returns the period lengths for a counter running at rate Hz.
//
// The 50Hz length is exact for any rate divisible by 50.  The 60Hz length is
// rounded down when the rate does not divide evenly, producing an output
// slightly above 60Hz.  The rounding direction is deliberate and must not be
// corrected upward - doing so changes the accepted error budget.
func PeriodsAt(rate uint32) Periods {
	return Periods{T50: rate / 50, T60: rate / 60}
}

// Period maps a frequency select level to the corresponding period length.
// Low selects 50Hz and High selects 60Hz.
func (p Periods) Period(sel Level) uint32 {
	if sel == High {
		return p.T60
	}
	return p.T50
}

// LevelAt returns the output level for a position within the period.
//
// The level is High in the second half of the period, once the counter passes
// period/2 (integer division).  For odd period lengths the low phase is one
// tick longer than the high phase - a known asymmetry, not corrected.
func LevelAt(counter, period uint32) Level {
	return Level(counter > period/2)
}

// Position normalizes a free-running counter value to a position within the
// period.
//
// A value beyond the period collapses to 0 - not to counter-period - and
// requests a counter reset from the caller.  Any accumulated overshoot is
// discarded rather than carried into the next period.
func Position(counter, period uint32) (uint32, bool) {
	if counter > period {
		return 0, true
	}
	return counter, false
}
