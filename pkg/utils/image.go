package utils

import (
	"image"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/draw"
)

// ScaleImage enlarges img by factor without smoothing, so each
// source pixel becomes a factor x factor block.
func ScaleImage(img image.Image, factor int) *image.RGBA {
	factor = max(factor, 1)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WriteImage encodes img as a PNG to filename, adding the .png
// extension if it is missing.
func WriteImage(filename string, img image.Image) error {
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
