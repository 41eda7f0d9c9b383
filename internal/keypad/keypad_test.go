package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_CoversEveryKey(t *testing.T) {
	seen := make(map[Key]bool)
	for _, k := range Layout {
		assert.False(t, seen[k], "key %s mapped twice", Name(k))
		seen[k] = true
	}
	assert.Len(t, seen, Count)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
		ok   bool
	}{
		{'1', Key1, true},
		{'4', KeyC, true},
		{'x', Key0, true},
		{'X', Key0, true},
		{'V', KeyF, true},
		{'p', 0, false},
		{'0', 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			k, ok := Lookup(tt.r)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, k)
			}
		})
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, uint16(0x0001), Mask(Key0))
	assert.Equal(t, uint16(0x1000), Mask(KeyC))
	assert.Equal(t, uint16(0x8000), Mask(KeyF))
	assert.Equal(t, "A", Name(KeyA))
}
