package chip8

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithRandom sets the random source used by CXNN.
func WithRandom(rng *rand.Rand) Option {
	return func(in *Interpreter) {
		in.rng = rng
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(enabled bool) Option {
	return func(in *Interpreter) {
		in.trace = enabled
	}
}

// Interpreter executes CHIP-8 programs.
type Interpreter struct {
	logger  *log.Logger
	quirks  Quirks
	display Display
	keypad  Keypad
	rng     *rand.Rand
	trace   bool

	state State
}

// New returns an interpreter with the font loaded and the program counter
// set to ProgramStart.
func New(logger *log.Logger, quirks Quirks, display Display, keypad Keypad, options ...Option) *Interpreter {
	in := &Interpreter{
		logger:  logger,
		quirks:  quirks,
		display: display,
		keypad:  keypad,
		state:   newState(),
	}
	for _, option := range options {
		option(in)
	}
	if in.rng == nil {
		seed := uint64(time.Now().UnixNano())
		in.rng = rand.New(rand.NewPCG(seed, seed>>32))
	}
	return in
}

// LoadROM copies the program into memory at ProgramStart.
func (in *Interpreter) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("rom size %d exceeds maximum of %d bytes", len(rom), MaxROMSize)
	}
	copy(in.state.Memory[ProgramStart:], rom)
	return nil
}

// State returns a copy of the current machine state.
func (in *Interpreter) State() State {
	return in.state
}

// TickTimers advances both timers by one 60 Hz period.
func (in *Interpreter) TickTimers() {
	if in.state.DelayTimer > 0 {
		in.state.DelayTimer--
	}
	if in.state.SoundTimer > 0 {
		in.state.SoundTimer--
	}
}

// Step executes a single instruction.
func (in *Interpreter) Step() {
	address := in.state.PC
	ins := NewInstruction(in.state.Read(address), in.state.Read(address+1))
	in.state.PC += 2

	if in.trace {
		in.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", ins.Opcode()),
			log.String("code", disasm.Format(ins.Opcode())))
	}

	in.execute(address, ins)
}

func (in *Interpreter) execute(address uint16, ins Instruction) {
	switch ins.Opcode() {
	case 0x00E0:
		in.display.Clear()
		return
	case 0x00EE:
		in.ret(address)
		return
	}

	s := &in.state
	x, y := ins.Nibble2(), ins.Nibble3()

	switch ins.Nibble1() {
	case 0x1:
		s.PC = ins.N234()
	case 0x2:
		in.call(address, ins.N234())
	case 0x3:
		in.skipIf(s.V[x] == ins.Byte2())
	case 0x4:
		in.skipIf(s.V[x] != ins.Byte2())
	case 0x5:
		if ins.Nibble4() != 0 {
			in.unsupported(address, ins)
			return
		}
		in.skipIf(s.V[x] == s.V[y])
	case 0x6:
		s.V[x] = ins.Byte2()
	case 0x7:
		s.V[x] += ins.Byte2()
	case 0x8:
		in.executeALU(address, ins)
	case 0x9:
		if ins.Nibble4() != 0 {
			in.unsupported(address, ins)
			return
		}
		in.skipIf(s.V[x] != s.V[y])
	case 0xA:
		s.I = ins.N234()
	case 0xB:
		s.PC = ins.N234() + uint16(s.V[0])
	case 0xC:
		s.V[x] = uint8(in.rng.Uint32()) & ins.Byte2()
	case 0xD:
		in.draw(x, y, ins.Nibble4())
	case 0xE:
		in.executeKey(address, ins)
	case 0xF:
		in.executeMisc(address, ins)
	default:
		// 0NNN machine code routines
		in.unsupported(address, ins)
	}
}

// executeALU handles the 8XYN register arithmetic instructions.
func (in *Interpreter) executeALU(address uint16, ins Instruction) {
	s := &in.state
	x, y := ins.Nibble2(), ins.Nibble3()

	switch ins.Nibble4() {
	case 0x0:
		s.V[x] = s.V[y]
	case 0x1:
		s.V[x] |= s.V[y]
	case 0x2:
		s.V[x] &= s.V[y]
	case 0x3:
		s.V[x] ^= s.V[y]
	case 0x4:
		sum := uint16(s.V[x]) + uint16(s.V[y])
		s.V[x] = uint8(sum)
		if in.quirks.AddSetsCarry {
			s.V[FlagRegister] = uint8(sum >> 8)
		}
	case 0x5:
		flag := boolToFlag(s.V[x] > s.V[y])
		s.V[x] -= s.V[y]
		s.V[FlagRegister] = flag
	case 0x6:
		if in.quirks.ShiftSetVY {
			s.V[x] = s.V[y]
		}
		flag := s.V[x] & 0x01
		s.V[x] >>= 1
		s.V[FlagRegister] = flag
	case 0x7:
		flag := boolToFlag(s.V[y] > s.V[x])
		s.V[x] = s.V[y] - s.V[x]
		s.V[FlagRegister] = flag
	case 0xE:
		if in.quirks.ShiftSetVY {
			s.V[x] = s.V[y]
		}
		flag := s.V[x] >> 7
		s.V[x] <<= 1
		s.V[FlagRegister] = flag
	default:
		in.unsupported(address, ins)
	}
}

// executeKey handles the EX9E and EXA1 key skip instructions.
func (in *Interpreter) executeKey(address uint16, ins Instruction) {
	key := in.state.V[ins.Nibble2()]

	switch ins.Byte2() {
	case 0x9E:
		in.skipIf(in.keypad.KeyDown(key))
	case 0xA1:
		in.skipIf(!in.keypad.KeyDown(key))
	default:
		in.unsupported(address, ins)
	}
}

// executeMisc handles the FXNN timer, input, index and memory instructions.
func (in *Interpreter) executeMisc(address uint16, ins Instruction) {
	s := &in.state
	x := ins.Nibble2()

	switch ins.Byte2() {
	case 0x07:
		s.V[x] = s.DelayTimer
	case 0x0A:
		key, ok := in.keypad.KeyPressed()
		if !ok {
			s.PC -= 2
			return
		}
		s.V[x] = key
	case 0x15:
		s.DelayTimer = s.V[x]
	case 0x18:
		s.SoundTimer = s.V[x]
	case 0x1E:
		s.I += uint16(s.V[x])
	case 0x29:
		s.I = FontAddress + uint16(s.V[x])*FontGlyphSize
	case 0x33:
		value := s.V[x]
		s.Write(s.I, value/100)
		s.Write(s.I+1, value/10%10)
		s.Write(s.I+2, value%10)
	case 0x55:
		for i := range uint16(x) + 1 {
			s.Write(s.I+i, s.V[i])
		}
		if in.quirks.IncrementI {
			s.I += uint16(x) + 1
		}
	case 0x65:
		for i := range uint16(x) + 1 {
			s.V[i] = s.Read(s.I + i)
		}
		if in.quirks.IncrementI {
			s.I += uint16(x) + 1
		}
	default:
		in.unsupported(address, ins)
	}
}

// draw XORs an N row sprite read from I onto the display at (VX, VY).
// The start position wraps around the display, the sprite itself is clipped.
func (in *Interpreter) draw(x, y, rows uint8) {
	s := &in.state
	startX := s.V[x] % DisplayWidth
	startY := s.V[y] % DisplayHeight
	s.V[FlagRegister] = 0

	for row := range rows {
		posY := startY + row
		if posY >= DisplayHeight {
			return
		}

		sprite := s.Read(s.I + uint16(row))
		for bit := range uint8(8) {
			posX := startX + bit
			if posX >= DisplayWidth {
				break
			}
			if sprite&(0x80>>bit) == 0 {
				continue
			}
			if in.display.FlipPixel(posX, posY) {
				s.V[FlagRegister] = 1
			}
		}
	}
}

func (in *Interpreter) call(address, target uint16) {
	if err := in.state.Stack.Push(in.state.PC); err != nil {
		in.logger.Warn("Subroutine return address dropped",
			log.Hex("address", address),
			log.Int("depth", in.state.Stack.Depth()),
			log.Err(err))
	}
	in.state.PC = target
}

func (in *Interpreter) ret(address uint16) {
	target, err := in.state.Stack.Pop()
	if err != nil {
		in.logger.Warn("Return without subroutine call",
			log.Hex("address", address),
			log.Err(err))
	}
	in.state.PC = target
}

func (in *Interpreter) skipIf(condition bool) {
	if condition {
		in.state.PC += 2
	}
}

func (in *Interpreter) unsupported(address uint16, ins Instruction) {
	in.logger.Warn("Unsupported opcode",
		log.Hex("address", address),
		log.Hex("opcode", ins.Opcode()))
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
