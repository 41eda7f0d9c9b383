package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/go-chip8/internal/machine"
	"github.com/thelolagemann/go-chip8/internal/types"
)

func TestInstruction_ClearThenDraw(t *testing.T) {
	c := newCPU(t)
	for x := 0; x < types.ScreenWidth; x += 3 {
		c.m.Display.Flip(x, x%types.ScreenHeight)
	}

	cls, _ := Decode(0x00E0)
	_, err := c.Execute(cls)
	require.NoError(t, err)
	assert.Zero(t, c.m.Display.Frame().Lit())

	// draw the glyph for 0 at 10, 5
	c.m.I = machine.GlyphAddress(0)
	c.m.V[1], c.m.V[2] = 10, 5
	drw, _ := Decode(0xD125)
	_, err = c.Execute(drw)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), c.m.V[0xF])

	frame := c.m.Display.Frame()
	for y := 0; y < types.ScreenHeight; y++ {
		for x := 0; x < types.ScreenWidth; x++ {
			want := false
			if x >= 10 && x < 18 && y >= 5 && y < 10 {
				want = machine.Font[y-5]&(0x80>>(x-10)) != 0
			}
			if frame.At(x, y) != want {
				t.Fatalf("pixel %d,%d: expected %v", x, y, want)
			}
		}
	}
	assert.Equal(t, 14, frame.Lit())
}

func TestInstruction_DrawCollision(t *testing.T) {
	c := newCPU(t)
	c.m.I = machine.GlyphAddress(8)
	c.m.V[0], c.m.V[1] = 20, 12
	drw, _ := Decode(0xD015)

	_, _ = c.Execute(drw)
	assert.Equal(t, uint8(0), c.m.V[0xF])
	assert.NotZero(t, c.m.Display.Frame().Lit())

	_, _ = c.Execute(drw)
	assert.Equal(t, uint8(1), c.m.V[0xF])
	assert.Zero(t, c.m.Display.Frame().Lit(), "drawing twice erases the sprite")
}

func TestInstruction_DrawClips(t *testing.T) {
	testInstruction(t, "right edge", 0xD011, func(t *testing.T, c *CPU, i Instruction) {
		require.NoError(t, c.m.Write(0x300, 0xFF))
		c.m.I = 0x300
		c.m.V[0], c.m.V[1] = 60, 0

		_, err := c.Execute(i)
		require.NoError(t, err)
		frame := c.m.Display.Frame()
		assert.Equal(t, 4, frame.Lit(), "columns past the edge are clipped")
		assert.False(t, frame.At(0, 0), "columns do not wrap")
	})
	testInstruction(t, "bottom edge", 0xD01F, func(t *testing.T, c *CPU, i Instruction) {
		for n := uint16(0); n < 15; n++ {
			require.NoError(t, c.m.Write(0x300+n, 0x80))
		}
		c.m.I = 0x300
		c.m.V[0], c.m.V[1] = 0, 28

		_, err := c.Execute(i)
		require.NoError(t, err)
		assert.Equal(t, 4, c.m.Display.Frame().Lit(), "rows past the edge are clipped")
		assert.False(t, c.m.Display.Pixel(0, 0), "rows do not wrap")
	})
	testInstruction(t, "origin wraps", 0xD011, func(t *testing.T, c *CPU, i Instruction) {
		require.NoError(t, c.m.Write(0x300, 0x80))
		c.m.I = 0x300
		c.m.V[0], c.m.V[1] = 64+5, 64+3

		_, _ = c.Execute(i)
		assert.True(t, c.m.Display.Pixel(5, 3))
	})
	testInstruction(t, "origin below display", 0xD011, func(t *testing.T, c *CPU, i Instruction) {
		require.NoError(t, c.m.Write(0x300, 0x80))
		c.m.I = 0x300
		c.m.V[0], c.m.V[1] = 0, 40
		c.m.V[0xF] = 1

		adv, err := c.Execute(i)
		require.NoError(t, err)
		assert.Equal(t, AdvanceNext, adv)
		assert.Zero(t, c.m.Display.Frame().Lit())
		assert.Equal(t, uint8(0), c.m.V[0xF])
	})
}

func TestInstruction_DrawOutOfBounds(t *testing.T) {
	testInstruction(t, "sprite beyond memory", 0xD005, func(t *testing.T, c *CPU, i Instruction) {
		c.m.I = types.MemorySize - 2
		_, err := c.Execute(i)
		assert.True(t, IsFatal(err))
	})
}
