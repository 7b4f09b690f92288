// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Test suite for the sim doubles.
package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/tick"
	"github.com/warthog618/tick/sim"
)

func TestCounter(t *testing.T) {
	c := sim.NewCounter(3)
	assert.Equal(t, uint32(0), c.Read())
	c.Tick()
	assert.Equal(t, uint32(1), c.Read())
	c.Tick()
	c.Tick()
	assert.Equal(t, uint32(3), c.Read())
	// wraps at max
	c.Tick()
	assert.Equal(t, uint32(0), c.Read())
	c.Set(2)
	assert.Equal(t, uint32(2), c.Read())
}

func TestCounterReset(t *testing.T) {
	c := sim.NewCounter(0xffff)
	c.Set(40001)
	c.Reset()
	// reset is to end of range, not to zero...
	assert.Equal(t, uint32(0xffff), c.Read())
	// ...so zero is reached on the next increment
	c.Tick()
	assert.Equal(t, uint32(0), c.Read())
}

func TestPin(t *testing.T) {
	p := sim.Pin{}
	assert.Equal(t, tick.Low, p.Read())
	p.Write(tick.High)
	assert.Equal(t, tick.High, p.Read())
	p.Write(tick.Low)
	assert.Equal(t, tick.Low, p.Read())
}

func TestRecorder(t *testing.T) {
	r := sim.Recorder{}
	r.Write(tick.Low)
	r.Write(tick.High)
	r.Write(tick.High)
	assert.Equal(t, []tick.Level{tick.Low, tick.High, tick.High}, r.Levels)
}
