package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelolagemann/go-chip8/internal/keypad"
)

func TestPressRelease(t *testing.T) {
	m, _ := New(nil)

	m.Press(keypad.KeyA)
	assert.True(t, m.IsPressed(0xA))
	assert.Equal(t, uint16(0), m.PreviousKeys)
	_, ok := m.Released()
	assert.False(t, ok, "a press is not a release")

	m.Press(keypad.Key3)
	assert.Equal(t, keypad.Mask(keypad.KeyA), m.PreviousKeys)

	m.Release(keypad.KeyA)
	assert.False(t, m.IsPressed(0xA))
	assert.True(t, m.IsPressed(0x3))

	k, ok := m.Released()
	assert.True(t, ok)
	assert.Equal(t, keypad.KeyA, k)
}

func TestReleased_Lowest(t *testing.T) {
	m, _ := New(nil)
	m.PreviousKeys = keypad.Mask(keypad.Key9) | keypad.Mask(keypad.Key2)
	m.Keys = 0

	k, ok := m.Released()
	assert.True(t, ok)
	assert.Equal(t, keypad.Key2, k)
}

func TestReleased_OnlyLatestEdit(t *testing.T) {
	m, _ := New(nil)

	m.Press(keypad.Key5)
	m.Release(keypad.Key5)
	m.Press(keypad.Key1)

	_, ok := m.Released()
	assert.False(t, ok, "the release was not the most recent edit")
}
