// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/warthog618/tick"
	"github.com/warthog618/tick/sim"
)

func init() {
	simCmd.Flags().UintVarP(&simOpts.Freq, "freq", "f", 50, "frequency to generate (50 or 60)")
	simCmd.Flags().UintVarP(&simOpts.Cycles, "cycles", "n", 2, "number of periods to simulate")
	simCmd.Flags().Uint32VarP(&simOpts.Rate, "rate", "r", tick.DefaultRate, "counter rate in Hz")
	simCmd.SetHelpTemplate(simCmd.HelpTemplate() + extendedSimHelp)
	rootCmd.AddCommand(simCmd)
}

var (
	simCmd = &cobra.Command{
		Use:   "sim",
		Short: "Run the control loop against a simulated counter",
		Long:  `Drive the control loop with an in-memory counter that advances one tick per iteration, and report the level transitions with their iteration offsets.`,
		Args:  cobra.NoArgs,
		RunE:  simulate,
		Example: "  gtick sim\n" +
			"  gtick sim -f 60 -n 5",
	}
	simOpts = struct {
		Freq   uint
		Cycles uint
		Rate   uint32
	}{}
)

var extendedSimHelp = `
Each period produces exactly two transitions - rising at the half period and
falling at the period boundary, where the counter reset fires.  The counter
reset is by overflow, so each period carries a one tick overshoot, visible in
the reported offsets.
`

func simulate(cmd *cobra.Command, args []string) error {
	var sel tick.Level
	switch simOpts.Freq {
	case 50:
		sel = tick.Low
	case 60:
		sel = tick.High
	default:
		return fmt.Errorf("unsupported frequency '%d'", simOpts.Freq)
	}
	if simOpts.Rate < 60 {
		return errors.New("rate must be at least 60Hz")
	}
	pp := tick.PeriodsAt(simOpts.Rate)
	period := pp.Period(sel)
	// the reference design's 16-bit counter width, unless the period
	// doesn't fit
	max := uint32(0xffff)
	if period > max {
		max = 0xffffffff
	}
	ctr := sim.NewCounter(max)
	out := sim.Pin{}
	g := tick.New(ctr, tick.Const(sel), &out, tick.WithPeriods(pp))

	iterations := int(simOpts.Cycles) * (int(period) + 2)
	last := tick.Low
	lastRise := 0
	cycles := 0
	highs := 0
	span := 0
	for i := 0; i < iterations; i++ {
		level := g.Step()
		if level != last {
			if level == tick.High {
				if cycles > 0 {
					span += i - lastRise
				}
				cycles++
				lastRise = i
				fmt.Printf("%8d rising\n", i)
			} else {
				highs += i - lastRise
				fmt.Printf("%8d falling (reset)\n", i)
			}
		}
		last = level
		ctr.Tick()
	}
	fmt.Printf("%d ticks/period nominal", period)
	if cycles > 1 {
		fmt.Printf(", %d measured", span/(cycles-1))
	}
	if highs > 0 && lastRise > 0 {
		duty := float64(highs) / float64(iterations) * 100
		fmt.Printf(", %.2f%% duty", duty)
	}
	fmt.Println()
	return nil
}
