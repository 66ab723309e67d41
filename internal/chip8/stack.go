package chip8

import "errors"

// StackSize is the number of return addresses the call stack can hold.
const StackSize = 16

var (
	// ErrStackOverflow is returned when pushing to a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when popping from an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// CallStack is a fixed capacity return address stack.
type CallStack struct {
	entries [StackSize]uint16
	depth   int
}

// Push stores a return address. A push to a full stack drops the address
// and returns ErrStackOverflow, the stack content is left unchanged.
func (s *CallStack) Push(address uint16) error {
	if s.depth == StackSize {
		return ErrStackOverflow
	}
	s.entries[s.depth] = address
	s.depth++
	return nil
}

// Pop removes and returns the most recently pushed address.
// Popping an empty stack returns 0 and ErrStackUnderflow.
func (s *CallStack) Pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.entries[s.depth], nil
}

// Depth returns the number of stored return addresses.
func (s *CallStack) Depth() int {
	return s.depth
}
