package term

import (
	"image/color"

	"github.com/nsf/termbox-go"
)

// cubeLevels are the channel intensities of the xterm 6x6x6 colour cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex returns the cube level nearest to v.
func cubeIndex(v uint8) int {
	best := 0
	for i, l := range cubeLevels {
		if absDiff(v, l) < absDiff(v, cubeLevels[best]) {
			best = i
		}
	}
	return best
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// colour256 returns the attribute of the xterm-256 cube colour nearest
// to c. Attributes in Output256 mode are the palette index plus one.
func colour256(c color.RGBA) termbox.Attribute {
	idx := 16 + 36*cubeIndex(c.R) + 6*cubeIndex(c.G) + cubeIndex(c.B)
	return termbox.Attribute(idx + 1)
}
