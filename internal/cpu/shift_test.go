package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Shift(t *testing.T) {
	// 0x8xy6 - SHR Vx, Vy
	testInstruction(t, "SHR V1, V2", 0x8126, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[1] = 0xFF
		c.m.V[2] = 0b0000_0101

		_, err := c.Execute(i)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0b0000_0010), c.m.V[1], "Vx is Vy shifted, not Vx")
		assert.Equal(t, uint8(0b0000_0101), c.m.V[2])
		assert.Equal(t, uint8(1), c.m.V[0xF])
	})
	// 0x8xyE - SHL Vx, Vy
	testInstruction(t, "SHL V1, V2", 0x812E, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[1] = 0x00
		c.m.V[2] = 0b1100_0001

		_, err := c.Execute(i)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0b1000_0010), c.m.V[1])
		assert.Equal(t, uint8(1), c.m.V[0xF])
	})
	testInstruction(t, "SHL V1, V2 without carry", 0x812E, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[2] = 0b0100_0000
		c.m.V[0xF] = 1

		_, _ = c.Execute(i)
		assert.Equal(t, uint8(0b1000_0000), c.m.V[1])
		assert.Equal(t, uint8(0), c.m.V[0xF])
	})
	// the flag is captured from Vy before it is overwritten
	testInstruction(t, "SHR VF, VF", 0x8FF6, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[0xF] = 0b11
		_, _ = c.Execute(i)
		assert.Equal(t, uint8(1), c.m.V[0xF])
	})
	testInstruction(t, "SHL V2, V2", 0x822E, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[2] = 0x81
		_, _ = c.Execute(i)
		assert.Equal(t, uint8(0x02), c.m.V[2])
		assert.Equal(t, uint8(1), c.m.V[0xF])
	})
}

func TestInstruction_ShiftAllInputs(t *testing.T) {
	shr, _ := Decode(0x8016)
	shl, _ := Decode(0x801E)
	c := newCPU(t)

	for y := 0; y < 256; y++ {
		c.m.V[1] = uint8(y)
		_, _ = c.Execute(shr)
		if c.m.V[0] != uint8(y>>1) || c.m.V[0xF] != uint8(y&1) {
			t.Fatalf("SHR %08b: got V0=%08b VF=%d", y, c.m.V[0], c.m.V[0xF])
		}

		_, _ = c.Execute(shl)
		if c.m.V[0] != uint8(y<<1) || c.m.V[0xF] != uint8(y>>7) {
			t.Fatalf("SHL %08b: got V0=%08b VF=%d", y, c.m.V[0], c.m.V[0xF])
		}
	}
}
