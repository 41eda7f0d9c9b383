package cpu

func init() {
	DefineInstruction(OpADDImm, "ADD V{x}, {kk}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.V[i.X] += i.KK
		return AdvanceNext, nil
	})
	DefineInstruction(OpADD, "ADD V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		sum := uint16(c.m.V[i.X]) + uint16(c.m.V[i.Y])
		c.m.V[i.X] = uint8(sum)
		c.m.SetFlag(sum > 0xFF)
		return AdvanceNext, nil
	})
	DefineInstruction(OpSUB, "SUB V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		x, y := c.m.V[i.X], c.m.V[i.Y]
		c.m.V[i.X] = x - y
		c.m.SetFlag(x >= y)
		return AdvanceNext, nil
	})
	DefineInstruction(OpSUBN, "SUBN V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		x, y := c.m.V[i.X], c.m.V[i.Y]
		c.m.V[i.X] = y - x
		c.m.SetFlag(y >= x)
		return AdvanceNext, nil
	})
	DefineInstruction(OpADDI, "ADD I, V{x}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.I += uint16(c.m.V[i.X])
		return AdvanceNext, nil
	})
}
