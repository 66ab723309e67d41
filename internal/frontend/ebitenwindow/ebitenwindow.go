// Package ebitenwindow implements a frontend on top of the ebiten game
// engine. Ebiten owns the calling goroutine, the interpreter loop runs on a
// separate goroutine and exchanges display and key state through a mutex
// protected snapshot and atomics.
package ebitenwindow

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
)

// keyMapping maps the keypad keys 0-F to keyboard keys.
var keyMapping = [keypad.KeyCount]ebiten.Key{
	ebiten.KeyX, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyZ, ebiten.KeyC,
	ebiten.KeyDigit4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

var _ frontend.Frontend = (*Window)(nil)

// Window is an ebiten window frontend.
type Window struct {
	frontend.Base

	logger *log.Logger
	title  string
	scale  int

	mu       sync.Mutex
	frame    framebuffer.Pixels
	rendered uint64

	keys     atomic.Uint32
	quit     atomic.Bool
	loopDone atomic.Bool
}

// New returns an ebiten window frontend, the window opens in Run.
func New(logger *log.Logger, cfg frontend.Config) *Window {
	return &Window{
		Base:     frontend.NewBase(),
		logger:   logger,
		title:    cfg.Title,
		scale:    cfg.Scale,
		rendered: math.MaxUint64,
	}
}

// Update advances the keypad state from the last polled keyboard state.
func (w *Window) Update() bool {
	w.Advance(uint16(w.keys.Load()))
	return w.quit.Load()
}

// Render publishes the display content to the window when it changed.
func (w *Window) Render() {
	version := w.Version()
	if version == w.rendered {
		return
	}
	w.rendered = version

	w.mu.Lock()
	w.frame = w.Pixels()
	w.mu.Unlock()
}

// Run opens the window on the calling goroutine and executes the loop on a
// new goroutine. Closing the window requests the loop to quit.
func (w *Window) Run(loop func() error) error {
	ebiten.SetWindowSize(framebuffer.Width*w.scale, framebuffer.Height*w.scale)
	ebiten.SetWindowTitle(w.title)

	errs := make(chan error, 1)
	go func() {
		errs <- loop()
		w.loopDone.Store(true)
	}()

	err := ebiten.RunGame(&game{window: w})
	w.quit.Store(true)
	loopErr := <-errs

	if err != nil {
		return fmt.Errorf("running ebiten: %w", err)
	}
	return loopErr
}

// Close is a no-op, ebiten releases the window when Run returns.
func (w *Window) Close() error {
	return nil
}

// game adapts the window to the ebiten.Game interface.
type game struct {
	window *Window
	rgba   []byte
}

func (g *game) Update() error {
	w := g.window
	if w.loopDone.Load() {
		return ebiten.Termination
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		w.quit.Store(true)
	}

	var mask uint32
	for key, ebitenKey := range keyMapping {
		if ebiten.IsKeyPressed(ebitenKey) {
			mask |= 1 << key
		}
	}
	w.keys.Store(mask)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.window
	w.mu.Lock()
	frame := w.frame
	w.mu.Unlock()

	g.rgba = pixelsToRGBA(frame, g.rgba)
	screen.WritePixels(g.rgba)
}

func (g *game) Layout(_, _ int) (int, int) {
	return framebuffer.Width, framebuffer.Height
}

// pixelsToRGBA converts the pixel grid to white on black RGBA data,
// reusing buf when it has the right size.
func pixelsToRGBA(pixels framebuffer.Pixels, buf []byte) []byte {
	const size = framebuffer.Width * framebuffer.Height * 4
	if len(buf) != size {
		buf = make([]byte, size)
	}

	for y := range framebuffer.Height {
		for x := range framebuffer.Width {
			var value byte
			if pixels[y][x] {
				value = 0xFF
			}
			offset := (y*framebuffer.Width + x) * 4
			buf[offset] = value
			buf[offset+1] = value
			buf[offset+2] = value
			buf[offset+3] = 0xFF
		}
	}
	return buf
}
