//go:build !test

// Package sdl provides the default display driver, drawing the
// display with an SDL renderer.
package sdl

import (
	"runtime"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/display/event"
)

func init() {
	// SDL video must be driven from the main thread
	runtime.LockOSThread()

	d := &Driver{}
	display.Install("sdl", d, []display.DriverOption{
		{
			Name:        "scale",
			Default:     display.PixelScale,
			Value:       &d.scale,
			Type:        "int",
			Description: "Size of a display pixel in screen pixels",
		},
		{
			Name:        "vsync",
			Default:     true,
			Value:       &d.vsync,
			Type:        "bool",
			Description: "Synchronize presentation with the monitor refresh",
		},
	})
}

var hotkeys = map[sdl.Keycode]display.Hotkey{
	sdl.K_ESCAPE:    display.HotkeyQuit,
	sdl.K_p:         display.HotkeyPause,
	sdl.K_BACKSPACE: display.HotkeyReset,
	sdl.K_F5:        display.HotkeySaveState,
	sdl.K_F9:        display.HotkeyLoadState,
	sdl.K_F12:       display.HotkeyScreenshot,
	sdl.K_EQUALS:    display.HotkeyFaster,
	sdl.K_MINUS:     display.HotkeySlower,
}

// Driver draws the display into an SDL window.
type Driver struct {
	scale int
	vsync bool

	emu      display.Emulator
	window   *sdl.Window
	renderer *sdl.Renderer
	rects    []sdl.Rect
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
}

func (d *Driver) Start(frames <-chan types.Frame, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}

	scale := int32(max(d.scale, 1))
	window, err := sdl.CreateWindow(d.emu.Title(), sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		types.ScreenWidth*scale, types.ScreenHeight*scale, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return multierror.Append(err, d.Stop())
	}
	d.window = window

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if d.vsync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		return multierror.Append(err, d.Stop())
	}
	d.renderer = renderer

	// draw in display pixels, letting SDL scale to the window
	if err := renderer.SetLogicalSize(types.ScreenWidth, types.ScreenHeight); err != nil {
		return multierror.Append(err, d.Stop())
	}

	var last types.Frame
	if err := d.draw(last); err != nil {
		return multierror.Append(err, d.Stop())
	}

	pollTicker := time.NewTicker(time.Millisecond * 5)
	defer pollTicker.Stop()

	for {
		select {
		case f := <-frames:
			last = f
			if err := d.draw(f); err != nil {
				display.Logger.Errorf("sdl: drawing frame: %v", err)
			}
		case e := <-events:
			switch e.Type {
			case event.Quit:
				return d.Stop()
			case event.Title:
				window.SetTitle(e.Data.(string))
			case event.Error:
				display.Logger.Errorf("sdl: emulator error: %v", e.Data)
			}
		case <-pollTicker.C:
			if d.poll(pressed, released, last) {
				// a running emulator answers with a Quit event
				if resp := d.emu.SendCommand(display.Close); resp.Error != nil {
					return d.Stop()
				}
			}
		}
	}
}

// poll drains the SDL event queue, returning true when the user asked
// to quit.
func (d *Driver) poll(pressed, released chan<- keypad.Key, last types.Frame) bool {
	quit := false
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch e := e.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if k, ok := keypad.Lookup(rune(e.Keysym.Sym)); ok {
				if e.Type == sdl.KEYDOWN {
					display.SendKey(pressed, k)
				} else {
					display.SendKey(released, k)
				}
				continue
			}
			if hk, ok := hotkeys[e.Keysym.Sym]; ok && e.Type == sdl.KEYDOWN {
				quit = display.HandleHotkey(d.emu, hk, last) || quit
			}
		}
	}
	return quit
}

// draw renders f, filling the background and then each lit pixel.
func (d *Driver) draw(f types.Frame) error {
	bg, fg := display.CurrentPalette.Background, display.CurrentPalette.Foreground

	d.rects = d.rects[:0]
	for i, lit := range f {
		if lit {
			d.rects = append(d.rects, sdl.Rect{X: int32(i % types.ScreenWidth), Y: int32(i / types.ScreenWidth), W: 1, H: 1})
		}
	}

	if err := d.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
		return err
	}
	if err := d.renderer.Clear(); err != nil {
		return err
	}
	if len(d.rects) > 0 {
		if err := d.renderer.SetDrawColor(fg.R, fg.G, fg.B, fg.A); err != nil {
			return err
		}
		if err := d.renderer.FillRects(d.rects); err != nil {
			return err
		}
	}
	d.renderer.Present()
	return nil
}

func (d *Driver) Stop() error {
	var result error
	if d.renderer != nil {
		if err := d.renderer.Destroy(); err != nil {
			result = multierror.Append(result, err)
		}
		d.renderer = nil
	}
	if d.window != nil {
		if err := d.window.Destroy(); err != nil {
			result = multierror.Append(result, err)
		}
		d.window = nil
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	return result
}
