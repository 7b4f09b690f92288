// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build rp2040 || rp2350

package pico

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"github.com/warthog618/tick"
)

// Timer peripheral memory map.
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x0c // raw timer low word

	// TimerRate is the raw timer rate in Hz.
	// The timer increments once per microsecond.
	TimerRate = 1000000
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// Counter provides the raw microsecond timer as a tick.Counter.
//
// TIMERAWL is read-only, so the overflow reset is modelled with an epoch
// offset - Reset moves the epoch so the effective value sits at the end of
// range until the timer's next increment wraps it to zero.
type Counter struct {
	epoch uint32
}

// Read returns the current counter value, relative to the epoch.
func (c *Counter) Read() uint32 {
	return timerRAWL.Get() - c.epoch
}

// Reset moves the epoch so the effective counter value is at the end of its
// range and the timer's next increment wraps it to zero.
func (c *Counter) Reset() {
	c.epoch = timerRAWL.Get() + 1
}

// InputPin adapts a machine pin into a frequency select input.
type InputPin struct {
	Pin machine.Pin
}

// Read returns the pin level.
func (p InputPin) Read() tick.Level {
	return tick.Level(p.Pin.Get())
}

// OutputPin adapts a machine pin into a tick output.
type OutputPin struct {
	Pin machine.Pin
}

// Write sets the pin level.
func (p OutputPin) Write(level tick.Level) {
	p.Pin.Set(bool(level))
}

// NewGenerator configures the pins and returns a generator driving tickPin
// with the frequency selected by selectPin.
//
// The tick pin is driven low before the loop starts, and the select pin is
// pulled down so an unjumpered board defaults to 50Hz.
func NewGenerator(tickPin, selectPin machine.Pin) *tick.Generator {
	tickPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	tickPin.Low()
	selectPin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	return tick.New(
		&Counter{},
		InputPin{selectPin},
		OutputPin{tickPin},
		tick.WithRate(TimerRate))
}
