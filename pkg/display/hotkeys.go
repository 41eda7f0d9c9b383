//go:build !test

package display

import (
	"fmt"
	"time"

	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/emulator"
	"github.com/thelolagemann/go-chip8/pkg/utils"
)

// Hotkey is an emulator function bound to a key outside of the
// keypad layout.
type Hotkey int

const (
	HotkeyQuit       Hotkey = iota // Escape
	HotkeyPause                    // P
	HotkeyReset                    // Backspace
	HotkeySaveState                // F5
	HotkeyLoadState                // F9
	HotkeyScreenshot               // F12
	HotkeyFaster                   // =
	HotkeySlower                   // -
)

// HandleHotkey performs the function bound to k. last is the most
// recent frame the driver has drawn, used for screenshots. It
// returns true if the driver should close.
func HandleHotkey(emu Emulator, k Hotkey, last types.Frame) bool {
	var resp emulator.ResponsePacket
	switch k {
	case HotkeyQuit:
		return true
	case HotkeyPause:
		if emu.Status().IsPaused() {
			resp = emu.SendCommand(Resume)
		} else {
			resp = emu.SendCommand(Pause)
		}
	case HotkeyReset:
		resp = emu.SendCommand(Reset)
	case HotkeySaveState:
		resp = emu.SendCommand(SaveState)
	case HotkeyLoadState:
		resp = emu.SendCommand(LoadState)
	case HotkeyFaster:
		resp = emu.SendCommand(emulator.SetSpeed(utils.Clamp(0.25, emu.Speed()*2, 8)))
	case HotkeySlower:
		resp = emu.SendCommand(emulator.SetSpeed(utils.Clamp(0.25, emu.Speed()/2, 8)))
	case HotkeyScreenshot:
		if err := Screenshot(last); err != nil {
			Logger.Errorf("screenshot: %v", err)
		}
		return false
	}

	if resp.Error != nil {
		Logger.Errorf("%s: %v", resp.Command, resp.Error)
	}
	return false
}

// Screenshot copies f to the clipboard, scaled up by PixelScale, and
// writes it to a timestamped PNG in the working directory.
func Screenshot(f types.Frame) error {
	img := utils.ScaleImage(CurrentPalette.Image(f), PixelScale)
	if err := utils.CopyImage(img); err != nil {
		Logger.Errorf("copying screenshot to clipboard: %v", err)
	}

	name := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))
	if err := utils.WriteImage(name, img); err != nil {
		return err
	}
	Logger.Infof("saved screenshot to %s", name)
	return nil
}
