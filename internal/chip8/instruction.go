package chip8

// Instruction is a decoded 16 bit opcode. It is constructed for every fetch
// and discarded after execution.
type Instruction struct {
	byte1 uint8
	byte2 uint8
}

// NewInstruction returns the instruction formed by the two opcode bytes,
// byte1 being the high byte. Every byte pair forms a valid instruction.
func NewInstruction(byte1, byte2 uint8) Instruction {
	return Instruction{byte1: byte1, byte2: byte2}
}

// Opcode returns the full 16 bit opcode.
func (i Instruction) Opcode() uint16 {
	return uint16(i.byte1)<<8 | uint16(i.byte2)
}

// Byte1 returns the high byte of the opcode.
func (i Instruction) Byte1() uint8 {
	return i.byte1
}

// Byte2 returns the low byte of the opcode, the NN operand.
func (i Instruction) Byte2() uint8 {
	return i.byte2
}

// Nibble1 returns the instruction class nibble.
func (i Instruction) Nibble1() uint8 {
	return i.byte1 >> 4
}

// Nibble2 returns the X register index.
func (i Instruction) Nibble2() uint8 {
	return i.byte1 & 0x0F
}

// Nibble3 returns the Y register index.
func (i Instruction) Nibble3() uint8 {
	return i.byte2 >> 4
}

// Nibble4 returns the N operand.
func (i Instruction) Nibble4() uint8 {
	return i.byte2 & 0x0F
}

// N234 returns the 12 bit NNN address operand.
func (i Instruction) N234() uint16 {
	return uint16(i.byte1&0x0F)<<8 | uint16(i.byte2)
}
