package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
)

func TestState_SaveLoad(t *testing.T) {
	m, err := New([]byte{0x00, 0xE0, 0x12, 0x00})
	require.NoError(t, err)
	m.V[0x4] = 0x42
	m.V[0xF] = 1
	m.I = 0x321
	m.PC = 0x20A
	m.Push(0x204)
	m.DelayTimer = 30
	m.SoundTimer = 4
	m.Press(keypad.KeyB)
	m.Display.Flip(10, 20)
	m.Display.Flip(63, 31)

	st := types.NewState()
	m.Save(st)

	restored := &State{}
	require.NoError(t, restored.Load(types.StateFromBytes(st.Bytes())))

	assert.Equal(t, m.Memory, restored.Memory)
	assert.Equal(t, m.V, restored.V)
	assert.Equal(t, m.I, restored.I)
	assert.Equal(t, m.PC, restored.PC)
	assert.Equal(t, m.Stack, restored.Stack)
	assert.Equal(t, m.SP, restored.SP)
	assert.Equal(t, m.DelayTimer, restored.DelayTimer)
	assert.Equal(t, m.SoundTimer, restored.SoundTimer)
	assert.Equal(t, m.Keys, restored.Keys)
	assert.Equal(t, m.PreviousKeys, restored.PreviousKeys)
	assert.Equal(t, m.Display.Frame(), restored.Display.Frame())
	assert.True(t, restored.Display.NeedsRepaint())
}

func TestState_LoadRejects(t *testing.T) {
	m, _ := New(nil)
	m.V[1] = 9

	assert.ErrorIs(t, m.Load(types.StateFromBytes([]byte("nope"))), ErrNotAState)

	st := types.NewState()
	st.WriteData([]byte("C8ST"))
	st.Write8(99)
	assert.True(t, errors.Is(m.Load(types.StateFromBytes(st.Bytes())), ErrStateVersion))

	// a truncated state leaves the machine untouched
	full := types.NewState()
	m.Save(full)
	truncated := full.Bytes()[:len(full.Bytes())-10]
	assert.ErrorIs(t, m.Load(types.StateFromBytes(truncated)), types.ErrStateTruncated)
	assert.Equal(t, uint8(9), m.V[1])
}
