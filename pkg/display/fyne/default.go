package fyne

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/thelolagemann/go-chip8/pkg/display"
)

var (
	_ fyne.Theme = defaultTheme{}
)

// defaultTheme is the fyne default theme, with the window background
// matched to the display palette so letterboxing is invisible.
type defaultTheme struct{}

func (defaultTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return display.CurrentPalette.Background
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (defaultTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (defaultTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (defaultTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
