package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelolagemann/go-chip8/internal/types"
)

func TestDisplay_Flip(t *testing.T) {
	var d Display

	assert.False(t, d.Flip(3, 4))
	assert.True(t, d.Pixel(3, 4))
	assert.True(t, d.NeedsRepaint())

	d.MarkPresented()
	assert.False(t, d.NeedsRepaint())

	assert.True(t, d.Flip(3, 4), "turning a lit pixel off is a collision")
	assert.False(t, d.Pixel(3, 4))
	assert.True(t, d.NeedsRepaint())
}

func TestDisplay_Clip(t *testing.T) {
	var d Display

	assert.False(t, d.Flip(types.ScreenWidth, 0))
	assert.False(t, d.Flip(0, types.ScreenHeight))
	assert.False(t, d.Flip(-1, 0))
	assert.False(t, d.NeedsRepaint(), "clipped pixels do not change the display")
}

func TestDisplay_Clear(t *testing.T) {
	var d Display
	d.Flip(0, 0)
	d.Flip(63, 31)
	d.MarkPresented()

	d.Clear()
	assert.Zero(t, d.Frame().Lit())
	assert.True(t, d.NeedsRepaint())
}
