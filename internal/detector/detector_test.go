package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		expected Dialect
	}{
		{"ch8 extension", "pong.ch8", Chip8},
		{"upper case extension", "PONG.CH8", Chip8},
		{"rom extension", "games/tetris.rom", Chip8},
		{"super-chip extension", "car.sc8", SuperChip},
		{"xo-chip extension", "sokoban.xo8", XOChip},
		{"no extension", "maze", Unknown},
		{"nes extension", "game.nes", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(log.NewTestLogger(t))
			assert.Equal(t, tt.expected, d.Detect(tt.file))
		})
	}
}
