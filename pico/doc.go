// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package pico adapts the RP2040/RP2350 hardware timer and machine pins to
// the generator's collaborator contracts.
//
// The adapters require TinyGo and are built only for the rp2040 and rp2350
// targets; under stock Go the package is empty.
package pico
