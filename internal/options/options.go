// Package options contains the program options.
package options

import "time"

// Parameters contains the positional arguments.
type Parameters struct {
	ROM                   string `arg:"positional" usage:"ROM file to run"`
	InstructionsPerSecond int    `arg:"positional" usage:"instructions executed per second" default:"700"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend  string        `flag:"frontend" usage:"frontend: sdl, ebiten, terminal, headless" default:"sdl"`
	Scale     int           `flag:"scale" usage:"window pixel scale" default:"20"`
	Seed      uint64        `flag:"seed" usage:"random number seed (default: time based)"`
	Duration  time.Duration `flag:"duration" usage:"stop after the given run time (default: until quit)"`
	Trace     bool          `flag:"trace" usage:"log every executed instruction, requires -debug"`
	StatsView bool          `flag:"statsview" usage:"serve runtime statistics charts over HTTP"`
	Debug     bool          `flag:"debug" usage:"enable debug logging"`
	Quiet     bool          `flag:"q" usage:"quiet mode"`
}

// QuirkFlags contains the interpreter dialect options.
type QuirkFlags struct {
	Profile      string `flag:"profile" usage:"quirk profile: default, cosmac, chip48" default:"default"`
	ShiftSetVY   bool   `flag:"shift-vy" usage:"8XY6/8XYE shift VY into VX"`
	IncrementI   bool   `flag:"fx55-incr-i" usage:"FX55/FX65 increment I"`
	AddSetsCarry bool   `flag:"carry" usage:"8XY4 sets VF on carry"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	QuirkFlags
}
