// Package headless implements a frontend without window or input device.
// The final display content is written as text when the frontend is closed.
package headless

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

var _ frontend.Frontend = (*Frontend)(nil)

// Frontend renders into memory only.
type Frontend struct {
	frontend.Base

	logger   *log.Logger
	output   io.Writer
	keys     uint16
	frames   int
	rendered uint64
}

// New returns a headless frontend that writes the final display to output.
// A nil output discards it.
func New(logger *log.Logger, output io.Writer) *Frontend {
	return &Frontend{
		Base:   frontend.NewBase(),
		logger: logger,
		output: output,
	}
}

// SetKeys sets the mask of held keys that the next Update makes current.
func (f *Frontend) SetKeys(mask uint16) {
	f.keys = mask
}

// Render counts the display changes.
func (f *Frontend) Render() {
	if version := f.Version(); version != f.rendered {
		f.rendered = version
		f.frames++
	}
}

// Frames returns the number of rendered display changes.
func (f *Frontend) Frames() int {
	return f.frames
}

// Update advances the keypad state, a headless frontend never requests to quit.
func (f *Frontend) Update() bool {
	f.Advance(f.keys)
	return false
}

// Run executes the loop on the calling goroutine.
func (f *Frontend) Run(loop func() error) error {
	return loop()
}

// Close writes the display content to the output.
func (f *Frontend) Close() error {
	f.logger.Debug("Headless frontend closed", log.Int("frames", f.frames))
	if f.output == nil {
		return nil
	}
	if _, err := fmt.Fprint(f.output, f.String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}
