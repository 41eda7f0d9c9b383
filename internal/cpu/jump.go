package cpu

import "github.com/thelolagemann/go-chip8/internal/types"

func init() {
	DefineInstruction(OpJP, "JP {nnn}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.PC = i.NNN
		return AdvanceNone, nil
	})
	// the return address is the instruction after the call, so RET
	// does not need to advance
	DefineInstruction(OpCALL, "CALL {nnn}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.Push(c.m.PC + types.InstructionSize)
		c.m.PC = i.NNN
		return AdvanceNone, nil
	})
	DefineInstruction(OpRET, "RET", func(c *CPU, i Instruction) (Advance, error) {
		c.m.PC = c.m.Pop()
		return AdvanceNone, nil
	})
	DefineInstruction(OpJPV0, "JP V0, {nnn}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.PC = i.NNN + uint16(c.m.V[0])
		return AdvanceNone, nil
	})

	DefineInstruction(OpSEImm, "SE V{x}, {kk}", func(c *CPU, i Instruction) (Advance, error) {
		return skipIf(c.m.V[i.X] == i.KK), nil
	})
	DefineInstruction(OpSNEImm, "SNE V{x}, {kk}", func(c *CPU, i Instruction) (Advance, error) {
		return skipIf(c.m.V[i.X] != i.KK), nil
	})
	DefineInstruction(OpSEReg, "SE V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		return skipIf(c.m.V[i.X] == c.m.V[i.Y]), nil
	})
	DefineInstruction(OpSNEReg, "SNE V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		return skipIf(c.m.V[i.X] != c.m.V[i.Y]), nil
	})
	DefineInstruction(OpSKP, "SKP V{x}", func(c *CPU, i Instruction) (Advance, error) {
		return skipIf(c.m.IsPressed(c.m.V[i.X])), nil
	})
	DefineInstruction(OpSKNP, "SKNP V{x}", func(c *CPU, i Instruction) (Advance, error) {
		return skipIf(!c.m.IsPressed(c.m.V[i.X])), nil
	})
}
