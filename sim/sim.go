// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sim provides in-memory doubles for the generator's hardware
// collaborators, so the control loop can be exercised without a board.
package sim

import "github.com/warthog618/tick"

// Counter is an in-memory tick.Counter with the same wraparound and
// overflow-reset semantics as the hardware counter, advanced explicitly by
// the test driving it.
type Counter struct {
	value uint32
	max   uint32
}

// NewCounter creates a counter that wraps at max.
//
// The reference design counts in a 16-bit register, so 0xffff is the usual
// choice.
func NewCounter(max uint32) *Counter {
	return &Counter{max: max}
}

// Read returns the current counter value.
func (c *Counter) Read() uint32 {
	return c.value
}

// Reset forces the counter to the end of its range, as the hardware reset
// does, so the next Tick wraps to zero.
func (c *Counter) Reset() {
	c.value = c.max
}

// Tick advances the counter one count, wrapping at max.
func (c *Counter) Tick() {
	if c.value == c.max {
		c.value = 0
		return
	}
	c.value++
}

// Set jumps the counter to a value, for scenario setup.
func (c *Counter) Set(value uint32) {
	c.value = value
}

// Pin is a settable level implementing both the Input and Output contracts.
type Pin struct {
	Level tick.Level
}

// Read returns the pin level.
func (p *Pin) Read() tick.Level {
	return p.Level
}

// Write sets the pin level.
func (p *Pin) Write(level tick.Level) {
	p.Level = level
}

// Recorder is an Output that captures every level written to it, for
// waveform assertions.
type Recorder struct {
	Levels []tick.Level
}

// Write appends the level to the record.
func (r *Recorder) Write(level tick.Level) {
	r.Levels = append(r.Levels, level)
}
