package cpu

import (
	"github.com/thelolagemann/go-chip8/internal/machine"
)

func init() {
	DefineInstruction(OpLDImm, "LD V{x}, {kk}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.V[i.X] = i.KK
		return AdvanceNext, nil
	})
	DefineInstruction(OpLDReg, "LD V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.V[i.X] = c.m.V[i.Y]
		return AdvanceNext, nil
	})
	DefineInstruction(OpLDI, "LD I, {nnn}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.I = i.NNN
		return AdvanceNext, nil
	})

	// timers
	DefineInstruction(OpLDVxDT, "LD V{x}, DT", func(c *CPU, i Instruction) (Advance, error) {
		c.m.V[i.X] = c.m.DelayTimer
		return AdvanceNext, nil
	})
	DefineInstruction(OpLDDTVx, "LD DT, V{x}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.DelayTimer = c.m.V[i.X]
		return AdvanceNext, nil
	})
	DefineInstruction(OpLDSTVx, "LD ST, V{x}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.SoundTimer = c.m.V[i.X]
		return AdvanceNext, nil
	})

	// waits for a key to be released, re-executing until one is
	DefineInstruction(OpLDVxK, "LD V{x}, K", func(c *CPU, i Instruction) (Advance, error) {
		k, ok := c.m.Released()
		if !ok {
			return AdvanceNone, nil
		}
		c.m.V[i.X] = k
		return AdvanceNext, nil
	})

	DefineInstruction(OpLDF, "LD F, V{x}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.I = machine.GlyphAddress(c.m.V[i.X])
		return AdvanceNext, nil
	})
	DefineInstruction(OpLDB, "LD B, V{x}", func(c *CPU, i Instruction) (Advance, error) {
		v := c.m.V[i.X]
		if err := c.m.WriteRange(c.m.I, []byte{v / 100, v / 10 % 10, v % 10}); err != nil {
			return AdvanceNone, err
		}
		return AdvanceNext, nil
	})
	DefineInstruction(OpLDIVx, "LD [I], V{x}", func(c *CPU, i Instruction) (Advance, error) {
		if err := c.m.WriteRange(c.m.I, c.m.V[:i.X+1]); err != nil {
			return AdvanceNone, err
		}
		c.m.I += uint16(i.X) + 1
		return AdvanceNext, nil
	})
	DefineInstruction(OpLDVxI, "LD V{x}, [I]", func(c *CPU, i Instruction) (Advance, error) {
		data, err := c.m.ReadRange(c.m.I, int(i.X)+1)
		if err != nil {
			return AdvanceNone, err
		}
		copy(c.m.V[:], data)
		c.m.I += uint16(i.X) + 1
		return AdvanceNext, nil
	})
}
