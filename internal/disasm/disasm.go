// Package disasm renders CHIP-8 opcodes as assembly text for traces and
// diagnostics.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the instruction that the opcode decodes to in the CHIP-8
// opcode table.
func Lookup(opcode uint16) (*chip8.Instruction, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction, true
		}
	}
	return nil, false
}

// Format returns the assembly text of the opcode, for example
// "drw V0, V1, $5". Opcodes that are not part of the instruction set are
// rendered as a data word.
func Format(opcode uint16) string {
	ins, ok := Lookup(opcode)
	if !ok {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if params := formatParameters(ins.Name, opcode); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// formatParameters returns the formatted parameter string for the given instruction.
func formatParameters(name string, opcode uint16) string {
	switch name {
	case chip8.ClsName, chip8.RetName:
		return ""
	case chip8.JpName:
		return formatJump(opcode)
	case chip8.CallName:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.SeName, chip8.SneName:
		return formatCompare(opcode)
	case chip8.LdName:
		return formatLoad(opcode)
	case chip8.AddName:
		return formatAdd(opcode)
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8.ShrName, chip8.ShlName, chip8.SkpName, chip8.SknpName:
		return fmt.Sprintf("V%X", registerX(opcode))
	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), opcode&0x00FF)
	case chip8.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	}
	return ""
}

// formatJump formats jump instructions (JP addr, JP V0+addr).
func formatJump(opcode uint16) string {
	if opcode&0xF000 == 0xB000 {
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return fmt.Sprintf("$%03X", opcode&0x0FFF)
}

// formatCompare formats SE and SNE against a byte or a register.
func formatCompare(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return ""
}

// formatLoad formats the register, index, timer and memory transfer forms of LD.
func formatLoad(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		return formatLoadSpecial(x, opcode&0x00FF)
	}
	return ""
}

func formatLoadSpecial(x, low uint16) string {
	switch low {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// formatAdd formats ADD Vx, byte / ADD Vx, Vy / ADD I, Vx.
func formatAdd(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}

func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
