package machine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/go-chip8/internal/types"
)

func TestNew(t *testing.T) {
	program := []byte{0x60, 0x2A, 0x12, 0x02}
	m, err := New(program)
	require.NoError(t, err)

	assert.Equal(t, types.ProgramStart, m.PC)
	assert.Equal(t, uint16(0), m.I)
	assert.Equal(t, uint8(0), m.SP)
	assert.Equal(t, [types.RegisterCount]uint8{}, m.V)
	assert.Equal(t, Font[:], m.Memory[types.FontStart:types.FontStart+types.FontSize])
	assert.Equal(t, program, m.Memory[types.ProgramStart:int(types.ProgramStart)+len(program)])
	assert.Zero(t, m.Display.Frame().Lit())
	assert.True(t, m.Display.NeedsRepaint())

	// nothing but the font and program should be populated
	for addr := types.FontSize; addr < int(types.ProgramStart); addr++ {
		if m.Memory[addr] != 0 {
			t.Fatalf("expected reserved memory at 0x%03X to be zero, got 0x%02X", addr, m.Memory[addr])
		}
	}
}

func TestNew_ProgramSize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		m, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, types.ProgramStart, m.PC)
	})
	t.Run("maximum", func(t *testing.T) {
		program := bytes.Repeat([]byte{0xAB}, types.MaxProgramSize)
		m, err := New(program)
		require.NoError(t, err)
		assert.Equal(t, byte(0xAB), m.Memory[types.MemorySize-1])
	})
	t.Run("too large", func(t *testing.T) {
		_, err := New(make([]byte, types.MaxProgramSize+1))
		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, types.MaxProgramSize+1, loadErr.Size)
	})
}

func TestReset_KeepsStateOnError(t *testing.T) {
	m, err := New([]byte{0x00, 0xE0})
	require.NoError(t, err)
	m.V[3] = 7

	require.Error(t, m.Reset(make([]byte, 4000)))
	assert.Equal(t, uint8(7), m.V[3])
}

func TestStack(t *testing.T) {
	m, _ := New(nil)

	m.Push(0x202)
	m.Push(0x304)
	assert.Equal(t, uint8(2), m.SP)
	assert.Equal(t, uint16(0x304), m.Pop())
	assert.Equal(t, uint16(0x202), m.Pop())
	assert.Equal(t, uint8(0), m.SP)
}

func TestStack_Wraps(t *testing.T) {
	m, _ := New(nil)

	for i := 0; i < types.StackSize; i++ {
		m.Push(uint16(0x200 + i*2))
	}
	assert.Equal(t, uint8(0), m.SP, "stack pointer should wrap after 16 pushes")

	// the 17th push overwrites the oldest entry
	m.Push(0xABC)
	assert.Equal(t, uint16(0xABC), m.Stack[0])

	// popping an empty stack wraps to the last slot
	m.SP = 0
	assert.Equal(t, uint16(0x200+15*2), m.Pop())
	assert.Equal(t, uint8(15), m.SP)
}

func TestDecrementTimers(t *testing.T) {
	m, _ := New(nil)
	m.DelayTimer = 2
	m.SoundTimer = 1

	m.DecrementTimers()
	assert.Equal(t, uint8(1), m.DelayTimer)
	assert.Equal(t, uint8(0), m.SoundTimer)
	assert.False(t, m.Beeping())

	m.DecrementTimers()
	m.DecrementTimers()
	assert.Equal(t, uint8(0), m.DelayTimer, "timers should saturate at zero")
}

func TestSetFlag(t *testing.T) {
	m, _ := New(nil)
	m.SetFlag(true)
	assert.Equal(t, uint8(1), m.Flag())
	m.SetFlag(false)
	assert.Equal(t, uint8(0), m.Flag())
}

func TestGlyphAddress(t *testing.T) {
	for digit := uint8(0); digit < 16; digit++ {
		assert.Equal(t, uint16(digit)*5, GlyphAddress(digit))
	}
	assert.Equal(t, GlyphAddress(0xA), GlyphAddress(0x1A), "only the low nibble selects a glyph")
}
