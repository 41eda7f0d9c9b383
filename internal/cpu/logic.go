package cpu

// The bitwise operations clear VF, as the original COSMAC VIP
// interpreter did.
func init() {
	DefineInstruction(OpOR, "OR V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.V[i.X] |= c.m.V[i.Y]
		c.m.SetFlag(false)
		return AdvanceNext, nil
	})
	DefineInstruction(OpAND, "AND V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.V[i.X] &= c.m.V[i.Y]
		c.m.SetFlag(false)
		return AdvanceNext, nil
	})
	DefineInstruction(OpXOR, "XOR V{x}, V{y}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.V[i.X] ^= c.m.V[i.Y]
		c.m.SetFlag(false)
		return AdvanceNext, nil
	})
	DefineInstruction(OpRND, "RND V{x}, {kk}", func(c *CPU, i Instruction) (Advance, error) {
		c.m.V[i.X] = c.random() & i.KK
		return AdvanceNext, nil
	})
}
