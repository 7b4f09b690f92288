// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/warthog618/gpio"
	"github.com/warthog618/tick"
	"github.com/warthog618/tick/rpi"
)

func init() {
	runCmd.Flags().StringVarP(&runOpts.TickPin, "tick-pin", "t", "J8p7", "pin to drive with the tick signal")
	runCmd.Flags().StringVarP(&runOpts.SelectPin, "select-pin", "s", "J8p11", "pin sampled to select the frequency")
	runCmd.Flags().UintVarP(&runOpts.Freq, "freq", "f", 0, "strap the frequency to 50 or 60 instead of sampling the select pin")
	runCmd.SetHelpTemplate(runCmd.HelpTemplate() + extendedRunHelp)
	rootCmd.AddCommand(runCmd)
}

var (
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Generate the tick signal on Raspberry Pi pins",
		Long:  `Drive the tick pin with the square wave selected by the select pin, using the BCM283x system timer as the reference counter.`,
		Args:  cobra.NoArgs,
		RunE:  run,
		Example: "  gtick run -t J8p7 -s J8p11\n" +
			"  gtick run -t 4 -f 60",
	}
	runOpts = struct {
		TickPin   string
		SelectPin string
		Freq      uint
	}{}
)

var extendedRunHelp = `
Pins:
  Pins may be identified by name (J8pXX) or number (0-26).

The select pin is pulled down, so 50Hz is generated when it is left
unjumpered and 60Hz when it is tied high.  With --freq the selection is
strapped in software and the select pin is not sampled.

Mapping the system timer requires access to /dev/mem, so run must be run as
root.  The pins are reverted to inputs on exit.
`

func run(cmd *cobra.Command, args []string) error {
	sel, err := selection(runOpts.Freq)
	if err != nil {
		return err
	}
	tp, err := parseOffset(runOpts.TickPin)
	if err != nil {
		return err
	}
	sp, err := parseOffset(runOpts.SelectPin)
	if err != nil {
		return err
	}
	err = gpio.Open()
	if err != nil {
		return err
	}
	defer gpio.Close()
	timer, err := rpi.OpenSysTimer()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := timer.Close(); cerr != nil {
			logErr(cmd, cerr)
		}
	}()
	pins := rpi.NewPins(tp, sp)
	defer pins.Revert()
	if sel == nil {
		sel = rpi.Input(pins.Select)
	}
	g := tick.New(timer, sel, rpi.Output(pins.Tick), tick.WithRate(rpi.TimerRate))
	// capture exit signals to ensure pins are reverted to inputs on exit.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	for {
		select {
		case <-quit:
			return nil
		default:
			g.Step()
		}
	}
}

func selection(freq uint) (tick.Input, error) {
	switch freq {
	case 0:
		// sample the select pin
		return nil, nil
	case 50:
		return tick.Const(tick.Low), nil
	case 60:
		return tick.Const(tick.High), nil
	}
	return nil, fmt.Errorf("unsupported frequency '%d'", freq)
}
