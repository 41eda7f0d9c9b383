package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/go-chip8/internal/types"
)

func TestFetch(t *testing.T) {
	m, _ := New([]byte{0xA2, 0xF0})

	word, err := m.Fetch()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xA2F0), word)
	assert.Equal(t, types.ProgramStart, m.PC, "fetch must not advance the program counter")
}

func TestFetch_OutOfBounds(t *testing.T) {
	m, _ := New(nil)

	m.PC = types.MemorySize - 2
	_, err := m.Fetch()
	require.NoError(t, err, "the last full word in memory can be fetched")

	for _, pc := range []uint16{types.MemorySize - 1, types.MemorySize, 0xFFFF} {
		m.PC = pc
		_, err := m.Fetch()
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected out of bounds fetch at 0x%04X, got %v", pc, err)
		}
		assert.Equal(t, AccessFetch, oob.Access)
		assert.Equal(t, pc, oob.Address)
	}
}

func TestWrite(t *testing.T) {
	m, _ := New(nil)

	require.NoError(t, m.Write(types.ProgramStart, 0x12))
	require.NoError(t, m.Write(types.MemorySize-1, 0x34))
	assert.Equal(t, byte(0x12), m.Memory[types.ProgramStart])
	assert.Equal(t, byte(0x34), m.Memory[types.MemorySize-1])

	var oob *OutOfBoundsError
	assert.True(t, errors.As(m.Write(types.FontStart, 0xFF), &oob), "font must be read-only")
	assert.True(t, errors.As(m.Write(types.ProgramStart-1, 0xFF), &oob))
	assert.True(t, errors.As(m.Write(types.MemorySize, 0xFF), &oob))
	assert.Equal(t, Font[0], m.Memory[0])
}

func TestWriteRange_AllOrNothing(t *testing.T) {
	m, _ := New(nil)

	err := m.WriteRange(types.MemorySize-2, []byte{1, 2, 3})
	require.Error(t, err)
	assert.Equal(t, byte(0), m.Memory[types.MemorySize-2])
	assert.Equal(t, byte(0), m.Memory[types.MemorySize-1])
}

func TestReadRange(t *testing.T) {
	m, _ := New(nil)

	glyph, err := m.ReadRange(GlyphAddress(0xF), types.GlyphSize)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x80, 0xF0, 0x80, 0x80}, glyph)

	_, err = m.ReadRange(types.MemorySize-1, 2)
	assert.Error(t, err)

	_, err = m.Read(types.MemorySize)
	assert.Error(t, err)
}
