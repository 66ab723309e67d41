// Package app provides the main application helpers for the interpreter.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/ebitenwindow"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/sdlwindow"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Name is the program name shown in the banner and the window title.
const Name = "retrochip8"

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info(Name, log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// NewFrontend creates the frontend with the given name. The headless
// frontend writes the final display to standard output unless quiet.
func NewFrontend(logger *log.Logger, opts options.Program) (frontend.Frontend, error) {
	cfg := frontend.Config{
		Title: fmt.Sprintf("%s - %s", Name, opts.ROM),
		Scale: opts.Scale,
	}

	switch strings.ToLower(opts.Frontend) {
	case frontend.SDL:
		window, err := sdlwindow.New(logger, cfg)
		if err != nil {
			return nil, fmt.Errorf("creating SDL window: %w", err)
		}
		return window, nil

	case frontend.Ebiten:
		return ebitenwindow.New(logger, cfg), nil

	case frontend.Terminal:
		term, err := terminal.New(logger)
		if err != nil {
			return nil, fmt.Errorf("creating terminal frontend: %w", err)
		}
		return term, nil

	case frontend.Headless:
		if opts.Quiet {
			return headless.New(logger, nil), nil
		}
		return headless.New(logger, os.Stdout), nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
