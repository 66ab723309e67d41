// Package config handles application configuration and setup
package config

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Quirk profile names.
const (
	ProfileDefault = "default"
	ProfileCosmac  = "cosmac"
	ProfileChip48  = "chip48"
)

var profiles = map[string]chip8.Quirks{
	ProfileDefault: {},
	ProfileCosmac:  {ShiftSetVY: true, IncrementI: true, AddSetsCarry: true},
	ProfileChip48:  {AddSetsCarry: true},
}

// Profiles returns the supported quirk profile names.
func Profiles() []string {
	return []string{ProfileDefault, ProfileCosmac, ProfileChip48}
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Quirks resolves the quirk profile and enables the individually set quirks on top of it.
func Quirks(opts options.QuirkFlags) (chip8.Quirks, error) {
	name := strings.ToLower(opts.Profile)
	if name == "" {
		name = ProfileDefault
	}

	quirks, ok := profiles[name]
	if !ok {
		return chip8.Quirks{}, fmt.Errorf("unsupported quirk profile '%s'. Valid options: %s",
			opts.Profile, strings.Join(Profiles(), ", "))
	}

	quirks.ShiftSetVY = quirks.ShiftSetVY || opts.ShiftSetVY
	quirks.IncrementI = quirks.IncrementI || opts.IncrementI
	quirks.AddSetsCarry = quirks.AddSetsCarry || opts.AddSetsCarry
	return quirks, nil
}
