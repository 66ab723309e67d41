// Package sdlwindow implements a frontend that renders into an SDL2 window
// and reads the keypad from the keyboard state.
package sdlwindow

import (
	"fmt"
	"math"
	"runtime"

	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// keyMapping maps the keypad keys 0-F to keyboard scancodes.
var keyMapping = [keypad.KeyCount]int{
	sdl.SCANCODE_X, sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3,
	sdl.SCANCODE_Q, sdl.SCANCODE_W, sdl.SCANCODE_E, sdl.SCANCODE_A,
	sdl.SCANCODE_S, sdl.SCANCODE_D, sdl.SCANCODE_Z, sdl.SCANCODE_C,
	sdl.SCANCODE_4, sdl.SCANCODE_R, sdl.SCANCODE_F, sdl.SCANCODE_V,
}

var _ frontend.Frontend = (*Window)(nil)

// Window is an SDL2 window frontend.
type Window struct {
	frontend.Base

	logger   *log.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32

	quit     bool
	rendered uint64
}

// New initializes SDL and opens the window. SDL requires all calls to be
// made from the thread that initialized it, the calling goroutine stays
// locked to its thread until Close.
func New(logger *log.Logger, cfg frontend.Config) (*Window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	scale := int32(cfg.Scale)
	window, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		framebuffer.Width*scale, framebuffer.Height*scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return &Window{
		Base:     frontend.NewBase(),
		logger:   logger,
		window:   window,
		renderer: renderer,
		scale:    scale,
		rendered: math.MaxUint64,
	}, nil
}

// Update processes pending window events and advances the keypad state.
// Closing the window or pressing Escape requests to quit.
func (w *Window) Update() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			w.quit = true
		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				w.quit = true
			}
		}
	}

	state := sdl.GetKeyboardState()
	var mask uint16
	for key, scancode := range keyMapping {
		if state[scancode] != 0 {
			mask |= 1 << key
		}
	}
	w.Advance(mask)

	return w.quit
}

// Render redraws the window when the display changed.
func (w *Window) Render() {
	version := w.Version()
	if version == w.rendered {
		return
	}
	w.rendered = version

	if err := w.draw(); err != nil {
		w.logger.Error("Rendering failed", log.Err(err))
	}
}

func (w *Window) draw() error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}

	pixels := w.Pixels()
	for y := range framebuffer.Height {
		for x := range framebuffer.Width {
			if !pixels[y][x] {
				continue
			}
			rect := sdl.Rect{X: int32(x) * w.scale, Y: int32(y) * w.scale, W: w.scale, H: w.scale}
			if err := w.renderer.FillRect(&rect); err != nil {
				return fmt.Errorf("filling pixel: %w", err)
			}
		}
	}

	w.renderer.Present()
	return nil
}

// Run executes the loop on the calling goroutine, which owns the SDL thread.
func (w *Window) Run(loop func() error) error {
	return loop()
}

// Close destroys the window and shuts down SDL.
func (w *Window) Close() error {
	defer runtime.UnlockOSThread()

	if err := w.renderer.Destroy(); err != nil {
		w.logger.Error("Destroying renderer failed", log.Err(err))
	}
	if err := w.window.Destroy(); err != nil {
		w.logger.Error("Destroying window failed", log.Err(err))
	}
	sdl.Quit()
	return nil
}
