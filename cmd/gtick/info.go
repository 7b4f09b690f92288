// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/warthog618/tick"
)

func init() {
	infoCmd.Flags().Uint32VarP(&infoOpts.Rate, "rate", "r", tick.DefaultRate, "counter rate in Hz")
	infoCmd.SetHelpTemplate(infoCmd.HelpTemplate() + extendedInfoHelp)
	rootCmd.AddCommand(infoCmd)
}

var (
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Display the period constants for a counter rate",
		Args:  cobra.NoArgs,
		RunE:  info,
		Example: "  gtick info\n" +
			"  gtick info -r 1000000",
	}
	infoOpts = struct {
		Rate uint32
	}{}
)

var extendedInfoHelp = `
The period lengths are integer tick counts.  The 50Hz count is exact for any
rate divisible by 50.  The 60Hz count is rounded down when the rate does not
divide evenly, so the realized frequency is slightly above nominal and the
error accumulates linearly - the drift column shows how quickly.
`

func info(cmd *cobra.Command, args []string) error {
	if infoOpts.Rate < 60 {
		return errors.New("rate must be at least 60Hz")
	}
	pp := tick.PeriodsAt(infoOpts.Rate)
	fmt.Printf("counter rate: %dHz\n", infoOpts.Rate)
	printPeriod(infoOpts.Rate, 50, pp.T50)
	printPeriod(infoOpts.Rate, 60, pp.T60)
	return nil
}

func printPeriod(rate uint32, nominal int, period uint32) {
	actual := float64(rate) / float64(period)
	ppm := (actual - float64(nominal)) / float64(nominal) * 1e6
	// drift per hour in nanoseconds
	drift := time.Duration(ppm * 3.6e6)
	fmt.Printf("%dHz: %d ticks, actual %.6fHz, error %+.3fppm, drift %s/hour\n",
		nominal, period, actual, ppm, drift)
}
