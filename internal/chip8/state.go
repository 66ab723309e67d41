package chip8

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, the font is stored at FontAddress
//	0x200-0xFFF: Program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000
	// AddressMask limits addresses to the 12 bit address space.
	AddressMask = MemorySize - 1
	// ProgramStart is the address that ROMs are loaded to and executed from.
	ProgramStart = 0x200
	// MaxROMSize is the largest ROM that fits into program space.
	MaxROMSize = MemorySize - ProgramStart
	// FontAddress is the address of the built in hexadecimal font.
	FontAddress = 0x050
	// FontGlyphSize is the number of bytes of one font glyph.
	FontGlyphSize = 5

	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16
	// FlagRegister is the index of VF.
	FlagRegister = 0xF

	// DisplayWidth is the horizontal display resolution in pixels.
	DisplayWidth = 64
	// DisplayHeight is the vertical display resolution in pixels.
	DisplayHeight = 32
)

// font contains the glyphs 0-F, 4x5 pixels each, one byte per row.
var font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// State is the complete machine state of one interpreter run.
type State struct {
	Memory [MemorySize]byte
	V      [RegisterCount]uint8
	I      uint16
	PC     uint16
	Stack  CallStack

	DelayTimer uint8
	SoundTimer uint8
}

func newState() State {
	s := State{PC: ProgramStart}
	copy(s.Memory[FontAddress:], font[:])
	return s
}

// Read returns the byte at the address, masked to the 12 bit address space.
func (s *State) Read(address uint16) byte {
	return s.Memory[address&AddressMask]
}

// Write stores a byte at the address, masked to the 12 bit address space.
func (s *State) Write(address uint16, value byte) {
	s.Memory[address&AddressMask] = value
}
