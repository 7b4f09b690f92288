// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// +build linux

// Test suite for the system timer adapter.
//
// The epoch arithmetic is tested against a fabricated register block.
// TestOpenSysTimer exercises the real mapping and is skipped where /dev/mem
// is unavailable.
package rpi

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/tick"
)

func TestSysTimerRead(t *testing.T) {
	st := SysTimer{mem: make([]uint32, 7)}
	assert.Equal(t, uint32(0), st.Read())
	st.mem[clo] = 12345
	assert.Equal(t, uint32(12345), st.Read())
	st.mem[clo]++
	assert.Equal(t, uint32(12346), st.Read())
}

func TestSysTimerReset(t *testing.T) {
	st := SysTimer{mem: make([]uint32, 7)}
	st.mem[clo] = 20001
	st.Reset()
	// effective value sits at end of range...
	assert.Equal(t, uint32(0xffffffff), st.Read())
	// ...until the next increment wraps it to zero
	st.mem[clo]++
	assert.Equal(t, uint32(0), st.Read())
	st.mem[clo] += 5
	assert.Equal(t, uint32(5), st.Read())
}

func TestSysTimerResetNearWrap(t *testing.T) {
	st := SysTimer{mem: make([]uint32, 7)}
	// CLO itself about to wrap
	st.mem[clo] = 0xffffffff
	st.Reset()
	assert.Equal(t, uint32(0xffffffff), st.Read())
	st.mem[clo] = 0 // hardware wrap
	assert.Equal(t, uint32(0), st.Read())
	st.mem[clo]++
	assert.Equal(t, uint32(1), st.Read())
}

func TestPeriods(t *testing.T) {
	assert.Equal(t, tick.Periods{T50: 20000, T60: 16666}, Periods())
}

func TestReadBase(t *testing.T) {
	patterns := []struct {
		name   string
		ranges []byte
		base   int64
		ok     bool
	}{
		{
			// <0x7e000000 0x3f000000 0x01000000>
			"pi3",
			[]byte{0x7e, 0, 0, 0, 0x3f, 0, 0, 0, 0x01, 0, 0, 0},
			0x3f000000,
			true,
		},
		{
			// <0x7e000000 0x0 0xfe000000 0x01800000>
			"pi4",
			[]byte{0x7e, 0, 0, 0, 0, 0, 0, 0, 0xfe, 0, 0, 0, 0x01, 0x80, 0, 0},
			0xfe000000,
			true,
		},
		{
			"short",
			[]byte{0x7e, 0, 0, 0},
			0,
			false,
		},
		{
			"zero base",
			[]byte{0x7e, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			0,
			false,
		},
	}
	for _, p := range patterns {
		t.Run(p.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ranges")
			assert.Nil(t, os.WriteFile(path, p.ranges, 0644))
			b, err := readBase(path)
			if p.ok {
				assert.Nil(t, err)
				assert.Equal(t, p.base, b)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}

func TestReadBaseMissing(t *testing.T) {
	_, err := readBase(filepath.Join(t.TempDir(), "nonexistent"))
	assert.NotNil(t, err)
}

func TestOpenSysTimer(t *testing.T) {
	st, err := OpenSysTimer()
	if err != nil {
		t.Skip("cannot map system timer:", err)
	}
	defer st.Close()
	r := st.Read()
	time.Sleep(10 * time.Millisecond)
	assert.NotEqual(t, r, st.Read(), "timer not running")
}

func TestSysTimerClose(t *testing.T) {
	st, err := OpenSysTimer()
	if err != nil {
		t.Skip("cannot map system timer:", err)
	}
	assert.Nil(t, st.Close())
	assert.Equal(t, ErrClosed, st.Close())
}
