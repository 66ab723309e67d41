package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestHandleInput(t *testing.T) {
	f := newFrontend(log.NewTestLogger(t), &bytes.Buffer{})
	now := time.Now()

	f.handleInput([]byte("1qV"), now)
	assert.False(t, f.quit)
	assert.Equal(t, uint16(1<<0x1|1<<0x4|1<<0xF), f.keyMask(now))

	// keys are released after the hold duration
	assert.Equal(t, uint16(0), f.keyMask(now.Add(keyHoldDuration)))
}

func TestHandleInputQuit(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"escape", []byte{keyEscape}},
		{"ctrl-c", []byte{'x', keyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFrontend(log.NewTestLogger(t), &bytes.Buffer{})
			f.handleInput(tt.input, time.Now())
			assert.True(t, f.Update())
		})
	}
}

func TestUpdateAdvancesKeypad(t *testing.T) {
	f := newFrontend(log.NewTestLogger(t), &bytes.Buffer{})
	f.handleInput([]byte("x"), time.Now())

	assert.False(t, f.Update())
	assert.True(t, f.KeyDown(0x0))
	key, ok := f.KeyPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x0), key)
}

func TestRenderOnlyOnChange(t *testing.T) {
	var buf bytes.Buffer
	f := newFrontend(log.NewTestLogger(t), &buf)

	f.Render()
	first := buf.Len()
	assert.True(t, first > 0)
	assert.True(t, strings.Contains(buf.String(), "\r\n"))

	f.Render()
	assert.Equal(t, first, buf.Len())

	f.FlipPixel(0, 0)
	f.Render()
	assert.True(t, buf.Len() > first)
}

func TestCloseWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	f := newFrontend(log.NewTestLogger(t), &buf)

	assert.NoError(t, f.Close())
	assert.True(t, strings.Contains(buf.String(), escShowCursor))
}
