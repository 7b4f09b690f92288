// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/warthog618/tick"
	"github.com/warthog618/tick/sim"
)

// This example runs the generator against the in-memory doubles - no
// hardware required.  It lists the level transitions for one 50Hz period
// with their iteration offsets, and renders the period as a text waveform.
func main() {
	pp := tick.PeriodsAt(tick.DefaultRate)
	period := int(pp.T50)
	ctr := sim.NewCounter(0xffff)
	out := sim.Pin{}
	g := tick.New(ctr, tick.Const(tick.Low), &out, tick.WithPeriods(pp))
	cells := 72
	wave := make([]byte, 0, cells)
	last := tick.Low
	for i := 0; i < period+2; i++ {
		level := g.Step()
		if level != last {
			edge := "rising"
			if level == tick.Low {
				edge = "falling (reset)"
			}
			fmt.Printf("%6d: %s\n", i, edge)
		}
		if i%(period/cells) == 0 && len(wave) < cells {
			c := byte('_')
			if level == tick.High {
				c = '#'
			}
			wave = append(wave, c)
		}
		last = level
		ctr.Tick()
	}
	fmt.Println(string(wave))
}
