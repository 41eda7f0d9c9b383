package display

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/thelolagemann/go-chip8/internal/types"
)

// Palette holds the colours lit and unlit pixels are drawn with.
type Palette struct {
	Foreground color.RGBA
	Background color.RGBA
}

// DefaultPalette draws white pixels on a black background.
var DefaultPalette = Palette{
	Foreground: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Background: color.RGBA{A: 0xFF},
}

// CurrentPalette is the palette drivers draw with. It is set from
// the command line before the driver is started.
var CurrentPalette = DefaultPalette

// PixelScale is the default multiplier for the pixel size.
const PixelScale = 10

// ParseColor parses a colour written as RGB or RRGGBB hex digits,
// with or without a leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: expected 3 or 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// NewPalette parses a foreground and background colour.
func NewPalette(fg, bg string) (Palette, error) {
	var p Palette
	var err error
	if p.Foreground, err = ParseColor(fg); err != nil {
		return p, err
	}
	if p.Background, err = ParseColor(bg); err != nil {
		return p, err
	}
	return p, nil
}

// Colour returns the colour of a pixel.
func (p Palette) Colour(lit bool) color.RGBA {
	if lit {
		return p.Foreground
	}
	return p.Background
}

// Image renders f at one pixel per display pixel.
func (p Palette) Image(f types.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, types.ScreenWidth, types.ScreenHeight))
	p.Draw(img, f)
	return img
}

// Draw renders f into img, which must be ScreenWidth x ScreenHeight.
func (p Palette) Draw(img *image.RGBA, f types.Frame) {
	for i, lit := range f {
		c := p.Colour(lit)
		img.Pix[i*4] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
}

// RGB renders f as tightly packed 8-bit RGB triples, row-major.
func (p Palette) RGB(f types.Frame) []byte {
	b := make([]byte, types.PixelCount*3)
	for i, lit := range f {
		c := p.Colour(lit)
		b[i*3] = c.R
		b[i*3+1] = c.G
		b[i*3+2] = c.B
	}
	return b
}
