// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// +build linux

// Package rpi adapts Raspberry Pi hardware to the generator's collaborator
// contracts - the BCM283x system timer as the reference counter, and GPIO
// pins for the tick output and frequency select input.
package rpi

import (
	"encoding/binary"
	"errors"
	"os"
	"reflect"
	"unsafe"

	"github.com/warthog618/tick"
	"golang.org/x/sys/unix"
)

const (
	// The system timer register block sits at this offset from the
	// peripheral base.
	timerOffset = 0x3000
	memLength   = 4096

	// CLO register (free-running counter, low word), in words from the
	// start of the block.
	clo = 1

	// TimerRate is the system timer rate in Hz.
	// The timer increments once per microsecond.
	TimerRate = 1000000
)

// SysTimer provides the BCM283x free-running system timer as a tick.Counter.
//
// CLO is read-only, so the overflow reset is modelled with an epoch offset.
// Reset moves the epoch so the effective value sits at the end of range until
// the timer's next microsecond increment wraps it to zero - the same
// approximation, with the same one tick error bound, as the reference
// design's end-of-range register write.
//
// The timer is expected to be owned by a single generator loop and is not
// safe for concurrent use.
type SysTimer struct {
	mem   []uint32
	mem8  []uint8
	epoch uint32
}

// OpenSysTimer memory maps the system timer register block from /dev/mem.
// Requires root - unlike the GPIO block the timer is not exposed via a
// dedicated gpiomem device.
func OpenSysTimer() (*SysTimer, error) {
	file, err := os.OpenFile(
		"/dev/mem",
		os.O_RDWR|os.O_SYNC,
		0)

	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Memory map timer registers to byte array
	mem8, err := unix.Mmap(
		int(file.Fd()),
		base()+timerOffset,
		memLength,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED)

	if err != nil {
		return nil, err
	}

	// Convert mapped byte memory to unsafe []uint32 pointer, adjust length as needed
	header := *(*reflect.SliceHeader)(unsafe.Pointer(&mem8))
	header.Len /= 4 // (32 bit = 4 bytes)
	header.Cap /= 4

	mem := *(*[]uint32)(unsafe.Pointer(&header))

	return &SysTimer{mem: mem, mem8: mem8}, nil
}

// Close unmaps the timer registers.
func (t *SysTimer) Close() error {
	if t.mem == nil {
		return ErrClosed
	}
	t.mem = nil
	return unix.Munmap(t.mem8)
}

// Read returns the current counter value, relative to the epoch.
func (t *SysTimer) Read() uint32 {
	return t.mem[clo] - t.epoch
}

// Reset moves the epoch so the effective counter value is at the end of its
// range and the timer's next increment wraps it to zero.
func (t *SysTimer) Reset() {
	t.epoch = t.mem[clo] + 1
}

// Periods returns the period lengths for the system timer rate.
//
// At 1MHz the 50Hz period is exactly 20000 ticks, while the 60Hz period
// truncates to 16666 ticks, undershooting by about 40µs each second.
func Periods() tick.Periods {
	return tick.PeriodsAt(TimerRate)
}

var (
	// ErrClosed indicates the timer mapping has already been closed.
	ErrClosed = errors.New("already closed")
)

const (
	// Base for the earliest Pis, also used as the fallback when the
	// device tree is unavailable.
	defaultBase = 0x20000000

	rangesPath = "/proc/device-tree/soc/ranges"
)

func base() int64 {
	b, err := readBase(rangesPath)
	if err != nil {
		return defaultBase
	}
	return b
}

// readBase extracts the peripheral base address from a device tree ranges
// file.  The base is the second cell, or the subsequent cell on models whose
// ranges carry 64-bit addresses (e.g. the Pi 4).
func readBase(path string) (int64, error) {
	ranges, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(ranges) < 12 {
		return 0, errors.New("ranges too short")
	}
	b := int64(binary.BigEndian.Uint32(ranges[4:8]))
	if b == 0 && len(ranges) >= 16 {
		b = int64(binary.BigEndian.Uint32(ranges[8:12]))
	}
	if b == 0 {
		return 0, errors.New("no peripheral base in ranges")
	}
	return b, nil
}
