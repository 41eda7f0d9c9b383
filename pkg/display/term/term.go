//go:build !test

// Package term provides a display driver that draws the display in
// a terminal with termbox.
package term

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/display/event"
)

// upperHalf is drawn with the foreground set to the upper pixel and
// the background to the lower one.
const upperHalf = '▀'

func init() {
	d := &Driver{}
	display.Install("term", d, []display.DriverOption{
		{
			Name:        "hold",
			Default:     150,
			Value:       &d.hold,
			Type:        "int",
			Description: "Milliseconds a key stays pressed after the terminal last reported it",
		},
	})
}

var hotkeys = map[termbox.Key]display.Hotkey{
	termbox.KeyEsc:        display.HotkeyQuit,
	termbox.KeyCtrlC:      display.HotkeyQuit,
	termbox.KeyBackspace:  display.HotkeyReset,
	termbox.KeyBackspace2: display.HotkeyReset,
	termbox.KeyF5:         display.HotkeySaveState,
	termbox.KeyF9:         display.HotkeyLoadState,
	termbox.KeyF12:        display.HotkeyScreenshot,
}

var runeHotkeys = map[rune]display.Hotkey{
	'p': display.HotkeyPause,
	'P': display.HotkeyPause,
	'=': display.HotkeyFaster,
	'-': display.HotkeySlower,
}

// Driver draws the display in the terminal.
type Driver struct {
	hold int

	emu     display.Emulator
	title   string
	keys    *latch
	polling bool
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
	d.title = emu.Title()
}

func (d *Driver) Start(frames <-chan types.Frame, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc)

	d.keys = newLatch(time.Duration(max(d.hold, 1)) * time.Millisecond)

	input := make(chan termbox.Event, 16)
	d.polling = true
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				close(input)
				return
			}
			input <- ev
		}
	}()

	releaseTicker := time.NewTicker(time.Millisecond * 20)
	defer releaseTicker.Stop()

	var last types.Frame
	d.draw(last)

	for {
		select {
		case f := <-frames:
			last = f
			d.draw(f)
		case e := <-events:
			switch e.Type {
			case event.Quit:
				return d.Stop()
			case event.Title:
				d.title = e.Data.(string)
				d.draw(last)
			case event.Error:
				d.title = fmt.Sprint("error: ", e.Data)
				d.draw(last)
			}
		case ev, ok := <-input:
			if !ok {
				return nil
			}
			if d.handle(ev, pressed, last) {
				// a running emulator answers with a Quit event
				if resp := d.emu.SendCommand(display.Close); resp.Error != nil {
					return d.Stop()
				}
			}
		case now := <-releaseTicker.C:
			for _, k := range d.keys.expire(now) {
				display.SendKey(released, k)
			}
		}
	}
}

// handle processes a terminal event, returning true when the user
// asked to quit.
func (d *Driver) handle(ev termbox.Event, pressed chan<- keypad.Key, last types.Frame) bool {
	switch ev.Type {
	case termbox.EventResize:
		d.draw(last)
	case termbox.EventError:
		display.Logger.Errorf("term: %v", ev.Err)
	case termbox.EventKey:
		if ev.Ch != 0 {
			if k, ok := keypad.Lookup(ev.Ch); ok {
				if d.keys.press(k, time.Now()) {
					display.SendKey(pressed, k)
				}
				return false
			}
			if hk, ok := runeHotkeys[ev.Ch]; ok {
				return display.HandleHotkey(d.emu, hk, last)
			}
			return false
		}
		if hk, ok := hotkeys[ev.Key]; ok {
			return display.HandleHotkey(d.emu, hk, last)
		}
	}
	return false
}

// draw renders f two rows per terminal line, with the title below.
func (d *Driver) draw(f types.Frame) {
	fg := colour256(display.CurrentPalette.Foreground)
	bg := colour256(display.CurrentPalette.Background)
	colour := func(lit bool) termbox.Attribute {
		if lit {
			return fg
		}
		return bg
	}

	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for y := 0; y < types.ScreenHeight; y += 2 {
		for x := 0; x < types.ScreenWidth; x++ {
			termbox.SetCell(x, y/2, upperHalf, colour(f.At(x, y)), colour(f.At(x, y+1)))
		}
	}
	for i, r := range []rune(d.title) {
		if i >= types.ScreenWidth {
			break
		}
		termbox.SetCell(i, types.ScreenHeight/2, r, termbox.ColorDefault, termbox.ColorDefault)
	}

	if err := termbox.Flush(); err != nil {
		display.Logger.Errorf("term: %v", err)
	}
}

func (d *Driver) Stop() error {
	if d.polling {
		// unblock PollEvent so the input goroutine exits
		termbox.Interrupt()
		d.polling = false
	}
	if termbox.IsInit {
		termbox.Close()
	}
	return nil
}
