package chip8

// Quirks toggles instruction behavior to match historical interpreter
// dialects. The zero value selects the reference behavior. Every
// combination of toggles is valid.
type Quirks struct {
	// ShiftSetVY makes 8XY6 and 8XYE copy VY into VX before shifting.
	ShiftSetVY bool
	// IncrementI makes FX55 and FX65 advance I by X+1 after the transfer.
	IncrementI bool
	// AddSetsCarry makes 8XY4 write the carry of the addition to VF.
	AddSetsCarry bool
}
