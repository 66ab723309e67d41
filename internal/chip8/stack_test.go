package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCallStack(t *testing.T) {
	var s CallStack
	assert.NoError(t, s.Push(0x202))
	assert.NoError(t, s.Push(0x304))
	assert.Equal(t, 2, s.Depth())

	addr, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x304), addr)

	addr, err = s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x202), addr)
	assert.Equal(t, 0, s.Depth())
}

func TestCallStackOverflow(t *testing.T) {
	var s CallStack
	for i := range StackSize {
		assert.NoError(t, s.Push(uint16(0x200+i)))
	}

	err := s.Push(0xABC)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, StackSize, s.Depth())

	addr, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x200+StackSize-1), addr)
}

func TestCallStackUnderflow(t *testing.T) {
	var s CallStack
	addr, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, uint16(0), addr)
	assert.Equal(t, 0, s.Depth())
}
