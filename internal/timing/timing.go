// Package timing drives the interpreter at a fixed instruction rate while
// ticking the machine timers on an independent 60 Hz clock.
package timing

import (
	"context"
	"errors"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// TimerFrequency is the rate at which the delay and sound timers count down.
const TimerFrequency = 60

// DefaultInstructionsPerSecond is the instruction rate used when none is configured.
const DefaultInstructionsPerSecond = 700

var errInvalidRate = errors.New("instructions per second must be positive")

// Machine executes instructions and owns the timers.
type Machine interface {
	Step()
	TickTimers()
}

// Input polls the input devices, returning true when the user requested to quit.
type Input interface {
	Update() bool
}

// Output presents the display state.
type Output interface {
	Render()
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock, used for simulated time.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// Controller runs the fetch-execute loop.
type Controller struct {
	logger  *log.Logger
	machine Machine
	input   Input
	output  Output
	clock   Clock

	period      time.Duration
	timerPeriod time.Duration

	instructions uint64
	timerTicks   uint64
}

// New returns a controller executing the given number of instructions per second.
func New(logger *log.Logger, machine Machine, input Input, output Output,
	instructionsPerSecond int, options ...Option) (*Controller, error) {

	if instructionsPerSecond <= 0 {
		return nil, errInvalidRate
	}

	c := &Controller{
		logger:      logger,
		machine:     machine,
		input:       input,
		output:      output,
		clock:       systemClock{},
		period:      time.Second / time.Duration(instructionsPerSecond),
		timerPeriod: time.Second / TimerFrequency,
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// Run executes one instruction per period until the input signals quit,
// which returns nil, or until the context is done, which returns its error.
// Deadlines advance by a fixed period from the start time so that sleep
// inaccuracies do not accumulate.
func (c *Controller) Run(ctx context.Context) error {
	start := c.clock.Now()
	next := start
	nextTimer := start.Add(c.timerPeriod)

	c.logger.Debug("Starting execution",
		log.String("instruction_period", c.period.String()),
		log.String("timer_period", c.timerPeriod.String()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.input.Update() {
			c.logger.Debug("Quit requested",
				log.Int("instructions", int(c.instructions)),
				log.Int("timer_ticks", int(c.timerTicks)))
			return nil
		}

		c.machine.Step()
		c.instructions++
		c.output.Render()

		now := c.clock.Now()
		for !now.Before(nextTimer) {
			c.machine.TickTimers()
			c.timerTicks++
			nextTimer = nextTimer.Add(c.timerPeriod)
		}

		next = next.Add(c.period)
		if err := c.clock.SleepUntil(ctx, next); err != nil {
			return err
		}
	}
}

// Instructions returns the number of executed instructions.
func (c *Controller) Instructions() uint64 {
	return c.instructions
}

// TimerTicks returns the number of 60 Hz timer ticks.
func (c *Controller) TimerTicks() uint64 {
	return c.timerTicks
}
