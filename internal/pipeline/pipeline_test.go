package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func headlessConstructor(output *bytes.Buffer) FrontendConstructor {
	return func(logger *log.Logger, _ options.Program) (frontend.Frontend, error) {
		return headless.New(logger, output), nil
	}
}

func testOptions(rom string) options.Program {
	return options.Program{
		Parameters: options.Parameters{ROM: rom, InstructionsPerSecond: 1000},
		Flags:      options.Flags{Frontend: frontend.Headless, Scale: 1, Duration: 50 * time.Millisecond},
	}
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger, headlessConstructor(&bytes.Buffer{}))

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
	assert.NotNil(t, p.newFrontend)
}

func TestExecute(t *testing.T) {
	var output bytes.Buffer
	p := New(log.NewTestLogger(t), headlessConstructor(&output))

	// draw the glyph of V0 at 0,0 and loop forever
	rom := []byte{0x00, 0xE0, 0xF0, 0x29, 0xD0, 0x05, 0x12, 0x06}
	opts := testOptions(createTempFile(t, rom))

	result, err := p.Execute(context.Background(), opts)
	assert.NoError(t, err)
	assert.True(t, result.Instructions > 4)
	assert.Equal(t, uint16(0x206), result.State.PC)
	assert.Equal(t, uint16(chip8.FontAddress), result.State.I)
	assert.True(t, strings.HasPrefix(output.String(), "█▀▀█"))
}

func TestExecuteErrors(t *testing.T) {
	validROM := createTempFile(t, []byte{0x12, 0x00})

	tests := []struct {
		name        string
		opts        options.Program
		constructor FrontendConstructor
		errContains string
	}{
		{
			name:        "missing rom",
			opts:        testOptions(filepath.Join(t.TempDir(), "missing.ch8")),
			constructor: headlessConstructor(&bytes.Buffer{}),
			errContains: "loading rom",
		},
		{
			name: "unknown quirk profile",
			opts: func() options.Program {
				opts := testOptions(validROM)
				opts.Profile = "xo"
				return opts
			}(),
			constructor: headlessConstructor(&bytes.Buffer{}),
			errContains: "resolving quirks",
		},
		{
			name: "frontend unavailable",
			opts: testOptions(validROM),
			constructor: func(_ *log.Logger, _ options.Program) (frontend.Frontend, error) {
				return nil, errors.New("no display")
			},
			errContains: "creating frontend",
		},
		{
			name: "invalid speed",
			opts: func() options.Program {
				opts := testOptions(validROM)
				opts.InstructionsPerSecond = 0
				return opts
			}(),
			constructor: headlessConstructor(&bytes.Buffer{}),
			errContains: "creating timing controller",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(log.NewTestLogger(t), tt.constructor)
			_, err := p.Execute(context.Background(), tt.opts)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestExecuteCancelled(t *testing.T) {
	p := New(log.NewTestLogger(t), headlessConstructor(&bytes.Buffer{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Execute(ctx, testOptions(createTempFile(t, []byte{0x12, 0x00})))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), result.Instructions)
}

func TestExecuteSeedIsDeterministic(t *testing.T) {
	// V0 = random byte, loop forever
	romFile := createTempFile(t, []byte{0xC0, 0xFF, 0x12, 0x02})
	opts := testOptions(romFile)
	opts.Seed = 1234

	var values [2]uint8
	for i := range values {
		p := New(log.NewTestLogger(t), headlessConstructor(&bytes.Buffer{}))
		result, err := p.Execute(context.Background(), opts)
		assert.NoError(t, err)
		values[i] = result.State.V[0]
	}
	assert.Equal(t, values[0], values[1])
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
