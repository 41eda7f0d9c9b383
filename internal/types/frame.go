package types

const (
	// ScreenWidth is the width of the display in pixels.
	ScreenWidth = 64
	// ScreenHeight is the height of the display in pixels.
	ScreenHeight = 32
	// PixelCount is the total number of pixels on the display.
	PixelCount = ScreenWidth * ScreenHeight
)

// Frame is a snapshot of the display, stored row-major. A true
// value represents a lit pixel. Frames are passed by value between
// the emulator and display drivers, so a driver can never observe
// the display while it is being drawn to.
type Frame [PixelCount]bool

// At returns the state of the pixel at x, y. Coordinates outside
// of the display are reported as unlit.
func (f Frame) At(x, y int) bool {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return false
	}
	return f[y*ScreenWidth+x]
}

// Lit returns the number of lit pixels in the frame.
func (f Frame) Lit() int {
	n := 0
	for _, p := range f {
		if p {
			n++
		}
	}
	return n
}

// Pack packs the frame into a bitmap of PixelCount/8 bytes, most
// significant bit first, the same order sprites are stored in memory.
func (f Frame) Pack() []byte {
	b := make([]byte, PixelCount/8)
	for i, p := range f {
		if p {
			b[i/8] |= 0x80 >> (i % 8)
		}
	}
	return b
}

// Unpack is the inverse of Pack. Missing trailing bytes are treated
// as unlit pixels.
func Unpack(b []byte) Frame {
	var f Frame
	for i := range f {
		if i/8 < len(b) {
			f[i] = b[i/8]&(0x80>>(i%8)) != 0
		}
	}
	return f
}
