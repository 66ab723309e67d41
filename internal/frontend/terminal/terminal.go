// Package terminal implements a frontend that renders to a raw mode terminal
// using half block characters and reads the keypad from standard input.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminals only report key presses, a key counts as held for this long
// after its last byte was received. Key repeat keeps it held.
const keyHoldDuration = 150 * time.Millisecond

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03

	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
	escClearScreen = "\x1b[2J"
	escHome        = "\x1b[H"
)

var _ frontend.Frontend = (*Frontend)(nil)

// Frontend renders to the terminal connected to standard input and output.
type Frontend struct {
	frontend.Base

	logger   *log.Logger
	fd       int
	output   io.Writer
	oldState *term.State

	held     [keypad.KeyCount]time.Time
	quit     bool
	readBuf  []byte
	rendered uint64
}

// New switches the terminal to raw mode.
func New(logger *log.Logger) (*Frontend, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("standard input is not a terminal")
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil, fmt.Errorf("getting terminal size: %w", err)
	}
	if width < framebuffer.Width || height < framebuffer.Height/2 {
		return nil, fmt.Errorf("terminal size %dx%d is smaller than the required %dx%d",
			width, height, framebuffer.Width, framebuffer.Height/2)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting terminal raw mode: %w", err)
	}

	f := newFrontend(logger, os.Stdout)
	f.fd = fd
	f.oldState = oldState
	_, _ = io.WriteString(f.output, escHideCursor+escClearScreen)
	return f, nil
}

func newFrontend(logger *log.Logger, output io.Writer) *Frontend {
	return &Frontend{
		Base:     frontend.NewBase(),
		logger:   logger,
		fd:       -1,
		output:   output,
		readBuf:  make([]byte, 64),
		rendered: math.MaxUint64,
	}
}

// Update reads all pending input bytes and advances the keypad state.
// Escape and Ctrl-C request to quit.
func (f *Frontend) Update() bool {
	now := time.Now()
	if f.fd >= 0 {
		f.readInput(now)
	}
	f.Advance(f.keyMask(now))
	return f.quit
}

func (f *Frontend) readInput(now time.Time) {
	fds := []unix.PollFd{{Fd: int32(f.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, 0)
		if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			return
		}

		count, err := unix.Read(f.fd, f.readBuf)
		if err != nil || count <= 0 {
			return
		}
		f.handleInput(f.readBuf[:count], now)
	}
}

func (f *Frontend) handleInput(data []byte, now time.Time) {
	for _, b := range data {
		switch b {
		case keyEscape, keyCtrlC:
			f.quit = true
			continue
		}

		key, ok := keypad.KeyForRune(rune(b))
		if !ok {
			continue
		}
		f.held[key] = now.Add(keyHoldDuration)
	}
}

func (f *Frontend) keyMask(now time.Time) uint16 {
	var mask uint16
	for key, until := range f.held {
		if now.Before(until) {
			mask |= 1 << key
		}
	}
	return mask
}

// Render redraws the terminal when the display changed.
func (f *Frontend) Render() {
	version := f.Version()
	if version == f.rendered {
		return
	}
	f.rendered = version

	// raw mode does not translate line feeds
	frame := escHome + strings.ReplaceAll(f.String(), "\n", "\r\n")
	if _, err := io.WriteString(f.output, frame); err != nil {
		f.logger.Error("Writing to terminal failed", log.Err(err))
	}
}

// Run executes the loop on the calling goroutine.
func (f *Frontend) Run(loop func() error) error {
	return loop()
}

// Close restores the terminal state.
func (f *Frontend) Close() error {
	_, _ = io.WriteString(f.output, escShowCursor+"\r\n")
	if f.oldState == nil {
		return nil
	}
	if err := term.Restore(f.fd, f.oldState); err != nil {
		return fmt.Errorf("restoring terminal state: %w", err)
	}
	return nil
}
