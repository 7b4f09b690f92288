// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// +build linux

package rpi

import (
	"github.com/warthog618/gpio"
	"github.com/warthog618/tick"
)

// Input adapts a GPIO pin into a frequency select input for the generator.
func Input(pin *gpio.Pin) tick.Input {
	return inputPin{pin}
}

// Output adapts a GPIO pin into a tick output for the generator.
func Output(pin *gpio.Pin) tick.Output {
	return outputPin{pin}
}

type inputPin struct {
	pin *gpio.Pin
}

func (p inputPin) Read() tick.Level {
	return tick.Level(p.pin.Read())
}

type outputPin struct {
	pin *gpio.Pin
}

func (p outputPin) Write(level tick.Level) {
	p.pin.Write(gpio.Level(level))
}

// Pins holds the two GPIO lines used by the generator.
type Pins struct {
	Tick   *gpio.Pin
	Select *gpio.Pin
}

// NewPins configures the tick and select lines for the generator.
//
// The tick pin is driven low before being switched to output, so the signal
// starts low.  The select pin is pulled down, so a board with the select line
// unjumpered defaults to 50Hz.
//
// Requires the gpio package to be open.
func NewPins(tickPin, selectPin int) *Pins {
	t := gpio.NewPin(tickPin)
	t.Low()
	t.Output()
	s := gpio.NewPin(selectPin)
	s.Input()
	s.PullDown()
	return &Pins{Tick: t, Select: s}
}

// Revert returns the tick pin to an input and releases the select pull,
// leaving both lines in their power-on state.
func (p *Pins) Revert() {
	p.Tick.Input()
	p.Select.PullNone()
}
