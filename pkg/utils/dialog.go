//go:build !test

package utils

import (
	"image"
	"os"

	"github.com/sqweek/dialog"
)

func AskForFile(title, startingDir string) (string, error) {
	builder := dialog.File().SetStartDir(startingDir).Title(title)

	// show the dialog
	return builder.Load()
}

// AskForROM asks the user for a ROM with a file dialog, falling back
// to a prompt on stdin when no dialog could be shown.
func AskForROM(startingDir string) (string, error) {
	name, err := dialog.File().
		SetStartDir(startingDir).
		Filter("CHIP-8 ROM", "ch8", "c8", "rom", "zip", "gz", "xz", "7z").
		Title("Open ROM").
		Load()
	if err == nil {
		return name, nil
	}
	if err == dialog.ErrCancelled {
		return "", ErrNoFile
	}

	return PromptForFile(os.Stdin, os.Stderr, "Enter ROM file: ")
}

// SaveImage asks the user where to save img as a PNG.
func SaveImage(img image.Image) error {
	filename, err := dialog.File().Filter("PNG Image", "png").Title("Save Image").Save()
	if err != nil {
		return err
	}

	return WriteImage(filename, img)
}
