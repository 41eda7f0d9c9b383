package machine

import "github.com/thelolagemann/go-chip8/internal/types"

// Display is the 64x32 monochrome display surface. It tracks whether
// it has changed since it was last presented, so the outer loop only
// repaints when something was drawn.
type Display struct {
	pixels types.Frame
	dirty  bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = types.Frame{}
	d.dirty = true
}

// Pixel returns whether the pixel at x, y is lit.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels.At(x, y)
}

// Flip XORs the pixel at x, y and reports whether it was turned off,
// which is a collision. Pixels outside of the display are clipped.
func (d *Display) Flip(x, y int) (collision bool) {
	if x < 0 || y < 0 || x >= types.ScreenWidth || y >= types.ScreenHeight {
		return false
	}
	i := y*types.ScreenWidth + x
	collision = d.pixels[i]
	d.pixels[i] = !d.pixels[i]
	d.dirty = true
	return collision
}

// Frame returns a copy of the display contents.
func (d *Display) Frame() types.Frame {
	return d.pixels
}

// SetFrame replaces the display contents, as when loading a state.
func (d *Display) SetFrame(f types.Frame) {
	d.pixels = f
	d.dirty = true
}

// NeedsRepaint reports whether the display changed since MarkPresented
// was last called.
func (d *Display) NeedsRepaint() bool {
	return d.dirty
}

// MarkPresented records that the current contents have been shown.
func (d *Display) MarkPresented() {
	d.dirty = false
}
