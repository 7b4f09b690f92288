// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//
// Test suite for the period derivation and decision functions.
//
package tick

import (
	"testing"
)

func TestPeriodsAt(t *testing.T) {
	patterns := []struct {
		rate uint32
		t50  uint32
		t60  uint32
	}{
		{2000000, 40000, 33333},
		{1000000, 20000, 16666},
		{16000000, 320000, 266666},
		{600, 12, 10},
	}
	for _, p := range patterns {
		pp := PeriodsAt(p.rate)
		if pp.T50 != p.t50 {
			t.Errorf("%dHz: T50 got %d, want %d", p.rate, pp.T50, p.t50)
		}
		if pp.T60 != p.t60 {
			t.Errorf("%dHz: T60 got %d, want %d - must round down, never up", p.rate, pp.T60, p.t60)
		}
	}
}

func TestPeriod(t *testing.T) {
	pp := Periods{T50: Ticks50Hz, T60: Ticks60Hz}
	if pp.Period(Low) != Ticks50Hz {
		t.Errorf("Low selects %d, want %d", pp.Period(Low), Ticks50Hz)
	}
	if pp.Period(High) != Ticks60Hz {
		t.Errorf("High selects %d, want %d", pp.Period(High), Ticks60Hz)
	}
}

func TestLevelAt(t *testing.T) {
	patterns := []struct {
		name    string
		counter uint32
		period  uint32
		level   Level
	}{
		{"start", 0, 40000, Low},
		{"half", 20000, 40000, Low},
		{"past half", 20001, 40000, High},
		{"end", 40000, 40000, High},
		{"odd start", 0, 33333, Low},
		{"odd half", 16666, 33333, Low},
		{"odd past half", 16667, 33333, High},
		{"odd end", 33333, 33333, High},
	}
	for _, p := range patterns {
		if l := LevelAt(p.counter, p.period); l != p.level {
			t.Errorf("%s: LevelAt(%d, %d) got %v, want %v",
				p.name, p.counter, p.period, l, p.level)
		}
	}
}

// Over the positions of one cycle the low phase is never shorter than the
// high phase, and longer by at most one tick.
func TestLevelAtPhases(t *testing.T) {
	for _, period := range []uint32{10, 11, 33333, 40000} {
		lows := uint32(0)
		for c := uint32(0); c <= period; c++ {
			if LevelAt(c, period) == Low {
				lows++
			}
		}
		highs := period + 1 - lows
		if lows < highs || lows > highs+1 {
			t.Errorf("period %d: %d low, %d high", period, lows, highs)
		}
	}
}

func TestPosition(t *testing.T) {
	patterns := []struct {
		name     string
		counter  uint32
		period   uint32
		position uint32
		reset    bool
	}{
		{"start", 0, 40000, 0, false},
		{"mid", 20001, 40000, 20001, false},
		{"boundary", 40000, 40000, 40000, false},
		{"past", 40001, 40000, 0, true},
		{"far past", 65535, 40000, 0, true},
		{"carried past", 35000, 33333, 0, true},
	}
	for _, p := range patterns {
		position, reset := Position(p.counter, p.period)
		if position != p.position || reset != p.reset {
			t.Errorf("%s: Position(%d, %d) got (%d, %v), want (%d, %v)",
				p.name, p.counter, p.period, position, reset, p.position, p.reset)
		}
	}
}
