// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
	"github.com/warthog618/gpio"
	"github.com/warthog618/tick"
	"github.com/warthog618/tick/rpi"
)

// This example generates the tick signal on GPIO4 (J8 pin 7), with the
// frequency selected by GPIO17 (J8 pin 11).  The default pin assignments are
// defined in loadConfig, but can be altered via configuration (env, flag or
// config file).  The select pin is pulled down, so the output is 50Hz unless
// the pin is tied high.
// Do not run this example on a Raspberry Pi where those pins are externally
// driven.  Requires root to map the system timer.
func main() {
	cfg := loadConfig()
	err := gpio.Open()
	if err != nil {
		panic(err)
	}
	defer gpio.Close()
	timer, err := rpi.OpenSysTimer()
	if err != nil {
		panic(err)
	}
	defer timer.Close()
	pins := rpi.NewPins(
		int(cfg.MustGet("tick").Int()),
		int(cfg.MustGet("select").Int()))
	defer pins.Revert()
	g := tick.New(timer,
		rpi.Input(pins.Select),
		rpi.Output(pins.Tick),
		tick.WithRate(rpi.TimerRate))
	// capture exit signals to ensure pins are reverted to inputs on exit.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	for {
		select {
		case <-quit:
			return
		default:
			g.Step()
		}
	}
}

func loadConfig() *config.Config {
	defaultConfig := map[string]interface{}{
		"tick":   gpio.GPIO4,
		"select": gpio.GPIO17,
	}
	def := dict.New(dict.WithMap(defaultConfig))
	cfg := config.New(
		pflag.New(pflag.WithFlags(
			[]pflag.Flag{{Short: 'c', Name: "config-file"}})),
		env.New(env.WithEnvPrefix("TICKER_")),
		config.WithDefault(def))
	cfg.Append(
		blob.NewConfigFile(cfg, "config.file", "ticker.json", json.NewDecoder()))
	cfg = cfg.GetConfig("", config.WithMust)
	return cfg
}
