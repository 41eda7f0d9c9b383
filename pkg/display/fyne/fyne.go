//go:build !test

package fyne

import (
	"fmt"
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/display/event"
	"github.com/thelolagemann/go-chip8/pkg/emulator"
	"github.com/thelolagemann/go-chip8/pkg/utils"
)

func init() {
	d := &Driver{}
	display.Install("fyne", d, []display.DriverOption{
		{
			Name:        "scale",
			Default:     float64(display.PixelScale),
			Value:       &d.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
	})
}

var hotkeys = map[fyne.KeyName]display.Hotkey{
	fyne.KeyEscape:    display.HotkeyQuit,
	fyne.KeyP:         display.HotkeyPause,
	fyne.KeyBackspace: display.HotkeyReset,
	fyne.KeyF5:        display.HotkeySaveState,
	fyne.KeyF9:        display.HotkeyLoadState,
	fyne.KeyF12:       display.HotkeyScreenshot,
	fyne.KeyEqual:     display.HotkeyFaster,
	fyne.KeyMinus:     display.HotkeySlower,
}

var speeds = []float64{0.25, 0.5, 1, 2, 4}

// Driver displays the emulator in a fyne window.
type Driver struct {
	scale float64

	emu    display.Emulator
	app    fyne.App
	window fyne.Window
	raster *canvas.Raster

	last types.Frame
	mu   sync.Mutex
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
}

func (d *Driver) Start(frames <-chan types.Frame, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	d.app = app.NewWithID("com.github.thelolagemann.go-chip8")
	d.app.Settings().SetTheme(&defaultTheme{})

	d.window = d.app.NewWindow(d.emu.Title())
	d.window.SetMaster()
	d.window.SetPadded(false)
	d.window.Resize(fyne.NewSize(float32(types.ScreenWidth*d.scale), float32(types.ScreenHeight*d.scale)))

	// create the canvas
	d.raster = canvas.NewRaster(func(_, _ int) image.Image {
		d.mu.Lock()
		defer d.mu.Unlock()
		return display.CurrentPalette.Image(d.last)
	})
	d.raster.ScaleMode = canvas.ImageScalePixels
	d.raster.SetMinSize(fyne.NewSize(types.ScreenWidth, types.ScreenHeight))
	d.window.SetContent(d.raster)
	d.window.SetMainMenu(d.mainMenu())

	// handle input
	if desk, ok := d.window.Canvas().(desktop.Canvas); ok {
		desk.SetOnKeyDown(func(e *fyne.KeyEvent) {
			if k, ok := lookup(e.Name); ok {
				display.SendKey(pressed, k)
			} else if hk, ok := hotkeys[e.Name]; ok {
				if display.HandleHotkey(d.emu, hk, d.frame()) {
					d.window.Close()
				}
			}
		})
		desk.SetOnKeyUp(func(e *fyne.KeyEvent) {
			if k, ok := lookup(e.Name); ok {
				display.SendKey(released, k)
			}
		})
	}

	d.window.SetOnClosed(func() {
		d.emu.SendCommand(display.Close)
	})

	go d.run(frames, events)

	// run the application
	d.window.ShowAndRun()
	return nil
}

// run updates the window from the emulator until it quits.
func (d *Driver) run(frames <-chan types.Frame, events <-chan event.Event) {
	for {
		select {
		case f := <-frames:
			d.mu.Lock()
			d.last = f
			d.mu.Unlock()
			d.raster.Refresh()
		case e := <-events:
			switch e.Type {
			case event.Title:
				d.window.SetTitle(e.Data.(string))
			case event.Error:
				display.Logger.Errorf("fyne: emulator error: %v", e.Data)
			case event.Quit:
				d.app.Quit()
				return
			}
		}
	}
}

func (d *Driver) Stop() error {
	if d.app != nil {
		d.app.Quit()
	}
	return nil
}

func (d *Driver) frame() types.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

func (d *Driver) send(packet emulator.CommandPacket) {
	if resp := d.emu.SendCommand(packet); resp.Error != nil {
		display.Logger.Errorf("fyne: %s: %v", packet.Command, resp.Error)
	}
}

func (d *Driver) mainMenu() *fyne.MainMenu {
	running := func() bool { return !d.emu.Status().IsErrored() }

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open ROM", d.openROM),
		fyne.NewMenuItemSeparator(),
		NewCustomizedMenuItem("Save State", func() { d.send(display.SaveState) }, Gated(running)),
		NewCustomizedMenuItem("Load State", func() { d.send(display.LoadState) }, Gated(running)),
	)

	speed := fyne.NewMenuItem("Speed", nil)
	speed.ChildMenu = fyne.NewMenu("")
	for _, s := range speeds {
		s := s
		speed.ChildMenu.Items = append(speed.ChildMenu.Items, fyne.NewMenuItem(fmt.Sprintf("%gx", s), func() {
			d.send(emulator.SetSpeed(s))
		}))
	}

	emuMenu := fyne.NewMenu("Emulation",
		NewCustomizedMenuItem("Paused", nil, Checked(d.emu.Status().IsPaused(), func(paused bool) {
			if paused {
				d.send(display.Pause)
			} else {
				d.send(display.Resume)
			}
		})),
		fyne.NewMenuItem("Reset", func() { d.send(display.Reset) }),
		speed,
	)

	videoMenu := fyne.NewMenu("Video",
		fyne.NewMenuItem("Take Screenshot", func() {
			if err := display.Screenshot(d.frame()); err != nil {
				display.Logger.Errorf("fyne: %v", err)
			}
		}),
		fyne.NewMenuItem("Save Screenshot As", func() {
			img := utils.ScaleImage(display.CurrentPalette.Image(d.frame()), display.PixelScale)
			if err := utils.SaveImage(img); err != nil {
				display.Logger.Errorf("fyne: %v", err)
			}
		}),
	)

	return fyne.NewMainMenu(fileMenu, emuMenu, videoMenu)
}

func (d *Driver) openROM() {
	name, err := utils.AskForROM(".")
	if err != nil {
		display.Logger.Errorf("fyne: %v", err)
		return
	}
	rom, err := utils.LoadFile(name)
	if err != nil {
		display.Logger.Errorf("fyne: loading %s: %v", name, err)
		return
	}
	d.send(emulator.CommandPacket{Command: emulator.CommandLoadROM, Data: rom})
}

// lookup maps a fyne key name onto the keypad.
func lookup(name fyne.KeyName) (keypad.Key, bool) {
	if len(name) != 1 {
		return 0, false
	}
	return keypad.Lookup(rune(name[0]))
}
