package disasm

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestFormatParameters(t *testing.T) {
	tests := []struct {
		name     string
		instr    string
		opcode   uint16
		expected string
	}{
		{"CLS instruction", chip8.ClsName, 0x00E0, ""},
		{"RET instruction", chip8.RetName, 0x00EE, ""},
		{"JP instruction", chip8.JpName, 0x1234, "$234"},
		{"JP V0 instruction", chip8.JpName, 0xB234, "V0, $234"},
		{"CALL instruction", chip8.CallName, 0x2234, "$234"},
		{"SE Vx, byte", chip8.SeName, 0x3234, "V2, $34"},
		{"SNE Vx, Vy", chip8.SneName, 0x9230, "V2, V3"},
		{"LD Vx, byte", chip8.LdName, 0x6234, "V2, $34"},
		{"LD I, addr", chip8.LdName, 0xA234, "I, $234"},
		{"LD Vx, DT", chip8.LdName, 0xF207, "V2, DT"},
		{"LD Vx, K", chip8.LdName, 0xF20A, "V2, K"},
		{"LD B, Vx", chip8.LdName, 0xF233, "B, V2"},
		{"LD [I], Vx", chip8.LdName, 0xF255, "[I], V2"},
		{"ADD Vx, byte", chip8.AddName, 0x7234, "V2, $34"},
		{"ADD I, Vx", chip8.AddName, 0xF21E, "I, V2"},
		{"XOR Vx, Vy", chip8.XorName, 0x8233, "V2, V3"},
		{"SHL Vx", chip8.ShlName, 0x823E, "V2"},
		{"RND Vx, byte", chip8.RndName, 0xC234, "V2, $34"},
		{"DRW Vx, Vy, n", chip8.DrwName, 0xD235, "V2, V3, $5"},
		{"SKNP Vx", chip8.SknpName, 0xE2A1, "V2"},
		{"unknown instruction", "unknown", 0x0000, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatParameters(tt.instr, tt.opcode))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, chip8.ClsName, Format(0x00E0))
	assert.Equal(t, chip8.DrwName+" V0, V1, $5", Format(0xD015))
	assert.Equal(t, chip8.JpName+" $200", Format(0x1200))
	assert.Equal(t, ".word $FFFF", Format(0xFFFF))
}

func TestLookup(t *testing.T) {
	ins, ok := Lookup(0x2345)
	assert.True(t, ok)
	assert.Equal(t, chip8.CallName, ins.Name)

	_, ok = Lookup(0xFFFF)
	assert.False(t, ok)
}

func TestFormatOpcodeTable(t *testing.T) {
	for nibble, opcodes := range chip8.Opcodes {
		for _, op := range opcodes {
			opcode := op.Info.Value
			text := Format(opcode)
			assert.True(t, strings.HasPrefix(text, op.Instruction.Name),
				"nibble %X opcode %04X formatted as %q", nibble, opcode, text)

			switch op.Instruction.Name {
			case chip8.ClsName, chip8.RetName:
				assert.Equal(t, op.Instruction.Name, text)
			default:
				assert.NotEmpty(t, formatParameters(op.Instruction.Name, opcode),
					"opcode %04X has no parameters", opcode)
			}
		}
	}
}
