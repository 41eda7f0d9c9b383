package cpu

import "github.com/thelolagemann/go-chip8/internal/types"

func init() {
	DefineInstruction(OpCLS, "CLS", func(c *CPU, i Instruction) (Advance, error) {
		c.m.Display.Clear()
		return AdvanceNext, nil
	})
	DefineInstruction(OpDRW, "DRW V{x}, V{y}, {n}", drawSprite)
}

// drawSprite XORs an n-row sprite read from I onto the display with
// its origin at (Vx mod 64, Vy mod 64). Pixels that fall outside of
// the display are clipped. VF is set if any lit pixel was turned off.
func drawSprite(c *CPU, i Instruction) (Advance, error) {
	originX := int(c.m.V[i.X]) % types.ScreenWidth
	// Y wraps at 64 rather than the display height, so an origin in
	// rows 32-63 is clipped entirely instead of wrapping to the top.
	originY := int(c.m.V[i.Y]) % types.ScreenWidth

	rows := int(i.N)
	if visible := types.ScreenHeight - originY; visible < rows {
		rows = max(visible, 0)
	}
	sprite, err := c.m.ReadRange(c.m.I, rows)
	if err != nil {
		return AdvanceNone, err
	}

	collision := false
	for row, bits := range sprite {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			if c.m.Display.Flip(originX+col, originY+row) {
				collision = true
			}
		}
	}
	c.m.SetFlag(collision)

	return AdvanceNext, nil
}
