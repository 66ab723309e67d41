// Package frontend defines the presentation and input surface that the
// interpreter runs inside of.
package frontend

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/keypad"
)

// Frontend names.
const (
	SDL      = "sdl"
	Ebiten   = "ebiten"
	Terminal = "terminal"
	Headless = "headless"
)

// Names returns all supported frontend names.
func Names() []string {
	return []string{SDL, Ebiten, Terminal, Headless}
}

// Frontend combines the interpreter display and keypad with the lifecycle of
// the surface that presents them.
type Frontend interface {
	chip8.Display
	chip8.Keypad

	// Run executes the interpreter loop. Frontends that need to own the
	// calling goroutine run the loop on a different one and return its result.
	Run(loop func() error) error
	// Close releases all resources of the frontend.
	Close() error
}

// Config contains the settings shared by all frontends.
type Config struct {
	Title string
	Scale int
}

// Base provides the display memory and keypad state for a frontend.
// Frontends embed it and feed the keypad from their input source.
type Base struct {
	*framebuffer.Framebuffer
	*keypad.Keypad
}

// NewBase returns a cleared framebuffer and a keypad with no keys held.
func NewBase() Base {
	return Base{
		Framebuffer: framebuffer.New(),
		Keypad:      keypad.New(),
	}
}
