// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/timing"
)

// ParseFlags parses command line flags and positional arguments.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags, msg: "missing ROM file"}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	opts.ROM = args[0]
	opts.InstructionsPerSecond = timing.DefaultInstructionsPerSecond
	if len(args) == 2 {
		ips, err := strconv.Atoi(args[1])
		if err != nil || ips <= 0 {
			return opts, &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("invalid instructions per second '%s', expected a positive number", args[1]),
			}
		}
		opts.InstructionsPerSecond = ips
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command line usage.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("error: %s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file> [instructions per second]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks the number and the order of the positional arguments.
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after ROM file, please pass all options before the ROM file", arg),
			}
		}
	}
	if len(args) > 2 {
		return &UsageError{flags: flags, msg: "too many arguments"}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(frontend.Names(), opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(frontend.Names(), ", "))
	}

	opts.Profile = strings.ToLower(opts.Profile)
	if !slices.Contains(config.Profiles(), opts.Profile) {
		return fmt.Errorf("unsupported quirk profile: %s. Valid options: %s",
			opts.Profile, strings.Join(config.Profiles(), ", "))
	}

	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, expected a positive number", opts.Scale)
	}
	return nil
}

// DefaultScale renders every pixel as a 20x20 square, a 1280x640 window.
const DefaultScale = 20

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "frontend", frontend.SDL, "frontend to use (sdl/ebiten/terminal/headless)")
	flags.IntVar(&opts.Scale, "scale", DefaultScale, "window pixel scale")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random number seed, 0 uses a time based seed")
	flags.DurationVar(&opts.Duration, "duration", 0, "stop after the given run time, 0 runs until quit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.StatsView, "statsview", false, "serve runtime statistics charts over HTTP")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.StringVar(&opts.Profile, "profile", config.ProfileDefault, "quirk profile (default/cosmac/chip48)")
	flags.BoolVar(&opts.ShiftSetVY, "shift-vy", false, "8XY6/8XYE shift VY into VX")
	flags.BoolVar(&opts.IncrementI, "fx55-incr-i", false, "FX55/FX65 increment I by X+1")
	flags.BoolVar(&opts.AddSetsCarry, "carry", false, "8XY4 sets VF on carry")
}
