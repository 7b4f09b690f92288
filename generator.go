// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tick

// Counter is a free-running hardware counter incrementing at a fixed rate.
//
// The counter is owned and advanced entirely outside the generator, which
// only reads it and occasionally requests a reset.
type Counter interface {
	// Read returns the current counter value.
	// It must not block and cannot fail.
	Read() uint32
	// Reset forces the counter to the end of its range so its next
	// increment wraps to zero.  The reset is approximate - the counter
	// reaches zero up to one tick late - which is negligible against
	// period lengths of tens of thousands of ticks.
	Reset()
}

// Input is the frequency select line.
//
// It is sampled fresh on every generator iteration - unlatched and
// undebounced - so the caller is responsible for supplying a clean logic
// level.
type Input interface {
	Read() Level
}

// Output is the pin driven with the tick signal.
//
// The level is only ever written, never read back.
type Output interface {
	Write(Level)
}

// Const is a frequency select input strapped to a fixed level, for boards
// with the select line hardwired.
type Const Level

// Read returns the strapped level.
func (c Const) Read() Level {
	return Level(c)
}

// Option modifies the Generator returned by New.
type Option func(*Generator)

// WithRate derives the period lengths from a counter rate, in Hz.
func WithRate(rate uint32) Option {
	return func(g *Generator) {
		g.periods = PeriodsAt(rate)
	}
}

// WithPeriods sets the period lengths directly.
func WithPeriods(periods Periods) Option {
	return func(g *Generator) {
		g.periods = periods
	}
}

// Generator runs the tick signal control loop.
//
// Each iteration samples the select input, normalizes the counter to the
// selected period, and writes the resulting level to the output.  The level
// is recomputed from scratch every iteration - the generator keeps no state
// between iterations, so a select change takes effect on the very next
// iteration, possibly mid-period.
type Generator struct {
	counter Counter
	sel     Input
	out     Output
	periods Periods
}

// New creates a Generator.
//
// The period lengths default to those for a counter at DefaultRate.
func New(counter Counter, sel Input, out Output, options ...Option) *Generator {
	g := &Generator{
		counter: counter,
		sel:     sel,
		out:     out,
		periods: PeriodsAt(DefaultRate),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Periods returns the period lengths the generator is using.
func (g *Generator) Periods() Periods {
	return g.periods
}

// Step runs a single iteration of the control loop and returns the level
// written to the output.
//
// When the select input has changed since the previous iteration the carried
// counter value is compared against the new period length immediately.  If it
// already exceeds the new period a reset fires on this iteration, producing
// one foreshortened period which self-corrects on subsequent iterations.
//
// Step performs no allocation and cannot fail - the collaborator contracts
// define all of its operations as always succeeding.  A stalled counter
// freezes the output at its last-written level, undetectable at this layer.
func (g *Generator) Step() Level {
	period := g.periods.Period(g.sel.Read())
	counter, reset := Position(g.counter.Read(), period)
	if reset {
		g.counter.Reset()
	}
	level := LevelAt(counter, period)
	g.out.Write(level)
	return level
}

// Run executes the control loop forever.
//
// There is no exit condition - on bare hardware the loop terminates only with
// power loss.  Callers needing an exit path should drive Step directly.
func (g *Generator) Run() {
	for {
		g.Step()
	}
}
