// Package pipeline orchestrates the interpreter run stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/timing"
	"github.com/retroenv/retrogolib/log"
)

// FrontendConstructor creates the frontend for a run.
type FrontendConstructor func(logger *log.Logger, opts options.Program) (frontend.Frontend, error)

// Result describes a finished run.
type Result struct {
	State        chip8.State
	Instructions uint64
	TimerTicks   uint64
}

// Pipeline orchestrates the complete interpreter workflow.
type Pipeline struct {
	logger      *log.Logger
	detector    *detector.Detector
	loader      *loader.Loader
	newFrontend FrontendConstructor
}

// New creates a new interpreter pipeline.
func New(logger *log.Logger, newFrontend FrontendConstructor) *Pipeline {
	return &Pipeline{
		logger:      logger,
		detector:    detector.New(logger),
		loader:      loader.New(),
		newFrontend: newFrontend,
	}
}

// Execute loads the ROM and runs it until the user quits, the context is
// cancelled or the configured run duration elapsed. All setup errors are
// returned before the first instruction executes.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*Result, error) {
	p.detector.Detect(opts.ROM)

	rom, err := p.loader.Load(opts.ROM)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	quirks, err := config.Quirks(opts.QuirkFlags)
	if err != nil {
		return nil, fmt.Errorf("resolving quirks: %w", err)
	}

	p.printInfo(opts, rom, quirks)

	fe, err := p.newFrontend(p.logger, opts)
	if err != nil {
		return nil, fmt.Errorf("creating frontend: %w", err)
	}
	defer func() {
		if err := fe.Close(); err != nil {
			p.logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	interpreterOptions := []chip8.Option{chip8.WithTrace(opts.Trace)}
	if opts.Seed != 0 {
		rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
		interpreterOptions = append(interpreterOptions, chip8.WithRandom(rng))
	}

	interpreter := chip8.New(p.logger, quirks, fe, fe, interpreterOptions...)
	if err := interpreter.LoadROM(rom); err != nil {
		return nil, fmt.Errorf("loading rom into memory: %w", err)
	}

	controller, err := timing.New(p.logger, interpreter, fe, fe, opts.InstructionsPerSecond)
	if err != nil {
		return nil, fmt.Errorf("creating timing controller: %w", err)
	}

	if opts.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	err = fe.Run(func() error {
		return controller.Run(ctx)
	})

	result := &Result{
		State:        interpreter.State(),
		Instructions: controller.Instructions(),
		TimerTicks:   controller.TimerTicks(),
	}

	if opts.Duration > 0 && errors.Is(err, context.DeadlineExceeded) {
		p.logger.Debug("Run duration elapsed", log.String("duration", opts.Duration.String()))
		err = nil
	}
	if err != nil {
		return result, fmt.Errorf("running interpreter: %w", err)
	}
	return result, nil
}

// printInfo prints the information about the ROM and the interpreter setup.
func (p *Pipeline) printInfo(opts options.Program, rom []byte, quirks chip8.Quirks) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running Chip-8 ROM",
		log.String("file", opts.ROM),
		log.Int("size", len(rom)),
		log.Int("ips", opts.InstructionsPerSecond),
		log.String("frontend", opts.Frontend),
	)
	p.logger.Debug("Quirks",
		log.String("profile", opts.Profile),
		log.Bool("shift_vy", quirks.ShiftSetVY),
		log.Bool("fx55_incr_i", quirks.IncrementI),
		log.Bool("carry", quirks.AddSetsCarry),
	)
}
