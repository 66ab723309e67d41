// Package framebuffer provides the 64x32 monochrome pixel grid shared by
// all frontends.
package framebuffer

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Display resolution in pixels.
const (
	Width  = chip8.DisplayWidth
	Height = chip8.DisplayHeight
)

// Pixels is a snapshot of the pixel grid, indexed by row then column.
type Pixels [Height][Width]bool

// Framebuffer is a pixel grid that tracks modifications.
type Framebuffer struct {
	pixels  Pixels
	version uint64
}

// New returns a framebuffer with all pixels off.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	f.pixels = Pixels{}
	f.version++
}

// FlipPixel toggles the pixel and reports whether it ended off.
// Coordinates outside of the grid are ignored.
func (f *Framebuffer) FlipPixel(x, y uint8) bool {
	if int(x) >= Width || int(y) >= Height {
		return false
	}
	f.pixels[y][x] = !f.pixels[y][x]
	f.version++
	return !f.pixels[y][x]
}

// Pixel returns whether the pixel is on.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f.pixels[y][x]
}

// Pixels returns a copy of the pixel grid.
func (f *Framebuffer) Pixels() Pixels {
	return f.pixels
}

// Version returns a counter that changes whenever a pixel is modified.
func (f *Framebuffer) Version() uint64 {
	return f.version
}

// String renders the pixel grid as text, two pixel rows per line
// using half block characters.
func (f *Framebuffer) String() string {
	return f.pixels.String()
}

// String renders the pixel grid as text, two pixel rows per line
// using half block characters.
func (p Pixels) String() string {
	var sb strings.Builder
	sb.Grow(Height / 2 * (Width*3 + 1))

	for y := 0; y < Height; y += 2 {
		for x := range Width {
			sb.WriteRune(halfBlock(p[y][x], p[y+1][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func halfBlock(upper, lower bool) rune {
	switch {
	case upper && lower:
		return '█'
	case upper:
		return '▀'
	case lower:
		return '▄'
	default:
		return ' '
	}
}
