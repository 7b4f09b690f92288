// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/warthog618/gpio"
)

func init() {
	monCmd.Flags().DurationVarP(&monOpts.Interval, "interval", "i", time.Second, "reporting interval")
	monCmd.SetHelpTemplate(monCmd.HelpTemplate() + extendedMonHelp)
	rootCmd.AddCommand(monCmd)
}

var (
	monCmd = &cobra.Command{
		Use:   "mon <pin>",
		Short: "Measure the frequency and duty cycle of a generated signal",
		Long:  `Watch a GPIO pin for edges and report the measured frequency and duty cycle of the signal driving it.`,
		Args:  cobra.ExactArgs(1),
		RunE:  mon,
		Example: "  gtick mon J8p15\n" +
			"  gtick mon 22 -i 5s",
	}
	monOpts = struct {
		Interval time.Duration
	}{}
)

var extendedMonHelp = `
Jumper the monitored pin to the tick pin to verify the generated waveform in
software.  Edge timestamps are taken in user space, so expect some jitter in
individual cycles - the figures reported are averaged over the interval.
`

type monEvent struct {
	Time  time.Time
	Level gpio.Level
}

func mon(cmd *cobra.Command, args []string) error {
	o, err := parseOffset(args[0])
	if err != nil {
		return err
	}
	err = gpio.Open()
	if err != nil {
		return err
	}
	defer gpio.Close()
	evtchan := make(chan monEvent, 64)
	eh := func(p *gpio.Pin) {
		evtchan <- monEvent{Time: time.Now(), Level: p.Read()}
	}
	pin := gpio.NewPin(o)
	pin.Input()
	err = pin.Watch(gpio.EdgeBoth, eh)
	if err != nil {
		return err
	}
	defer pin.Unwatch()
	monWait(evtchan)
	return nil
}

func monWait(evtchan <-chan monEvent) {
	sigdone := make(chan os.Signal, 1)
	signal.Notify(sigdone, os.Interrupt, os.Kill)
	defer signal.Stop(sigdone)
	report := time.NewTicker(monOpts.Interval)
	defer report.Stop()
	var lastRise, lastFall time.Time
	var periods, highs time.Duration
	cycles := 0
	for {
		select {
		case evt := <-evtchan:
			if evt.Level == gpio.High {
				if !lastRise.IsZero() && lastFall.After(lastRise) {
					periods += evt.Time.Sub(lastRise)
					highs += lastFall.Sub(lastRise)
					cycles++
				}
				lastRise = evt.Time
			} else {
				lastFall = evt.Time
			}
		case <-report.C:
			if cycles == 0 {
				fmt.Println("no cycles")
				continue
			}
			avg := periods / time.Duration(cycles)
			freq := float64(time.Second) / float64(avg)
			duty := float64(highs) / float64(periods) * 100
			fmt.Printf("%.3fHz %.1f%% duty (%d cycles)\n", freq, duty, cycles)
			periods, highs, cycles = 0, 0, 0
		case <-sigdone:
			return
		}
	}
}
