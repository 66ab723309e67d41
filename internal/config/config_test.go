package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestQuirks(t *testing.T) {
	tests := []struct {
		name     string
		opts     options.QuirkFlags
		expected chip8.Quirks
	}{
		{
			name:     "empty profile",
			opts:     options.QuirkFlags{},
			expected: chip8.Quirks{},
		},
		{
			name:     "default profile",
			opts:     options.QuirkFlags{Profile: ProfileDefault},
			expected: chip8.Quirks{},
		},
		{
			name:     "cosmac profile",
			opts:     options.QuirkFlags{Profile: "COSMAC"},
			expected: chip8.Quirks{ShiftSetVY: true, IncrementI: true, AddSetsCarry: true},
		},
		{
			name:     "chip48 profile",
			opts:     options.QuirkFlags{Profile: ProfileChip48},
			expected: chip8.Quirks{AddSetsCarry: true},
		},
		{
			name:     "individual flags on top of profile",
			opts:     options.QuirkFlags{Profile: ProfileChip48, ShiftSetVY: true, IncrementI: true},
			expected: chip8.Quirks{ShiftSetVY: true, IncrementI: true, AddSetsCarry: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quirks, err := Quirks(tt.opts)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, quirks)
		})
	}
}

func TestQuirksUnknownProfile(t *testing.T) {
	_, err := Quirks(options.QuirkFlags{Profile: "superchip"})
	assert.ErrorContains(t, err, "unsupported quirk profile")
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
