package cpu

// Shifts read Vy and write Vx. The bit shifted out is captured
// before Vx is written, and VF is written last.
func init() {
	DefineInstruction(OpSHR, "SHR V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		y := c.m.V[i.Y]
		c.m.V[i.X] = y >> 1
		c.m.V[0xF] = y & 1
		return AdvanceNext, nil
	})
	DefineInstruction(OpSHL, "SHL V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		y := c.m.V[i.Y]
		c.m.V[i.X] = y << 1
		c.m.V[0xF] = y >> 7 & 1
		return AdvanceNext, nil
	})
}
