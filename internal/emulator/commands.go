package emulator

import (
	"fmt"
	"math"

	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/emulator"
)

// handle executes a command on the emulator goroutine.
func (e *Emulator) handle(p emulator.CommandPacket) emulator.ResponsePacket {
	resp := emulator.ResponsePacket{Command: p.Command}

	switch p.Command {
	case emulator.CommandPause:
		e.status.Store(int32(emulator.Paused))
		e.silence()
		e.Infof("paused")
	case emulator.CommandResume:
		e.status.Store(int32(emulator.Running))
		e.updateBeeper()
		e.Infof("resumed")
	case emulator.CommandClose:
		e.silence()
	case emulator.CommandReset:
		resp.Error = e.reset(e.rom)
	case emulator.CommandLoadROM:
		resp.Error = e.reset(p.Data)
	case emulator.CommandSaveState:
		resp.Data, resp.Error = e.saveState()
	case emulator.CommandLoadState:
		resp.Error = e.loadStateCommand(p.Data)
	case emulator.CommandSetSpeed:
		speed, err := emulator.ParseSpeed(p)
		if err != nil {
			resp.Error = err
			break
		}
		e.speed.Store(math.Float64bits(speed))
		e.Infof("speed set to %.2fx", speed)
	default:
		resp.Error = fmt.Errorf("%w: %d", emulator.ErrUnknownCommand, p.Command)
	}

	if resp.Error != nil {
		e.Errorf("%s: %v", p.Command, resp.Error)
	}
	return resp
}

// reset restarts the machine with rom loaded. If rom does not fit,
// the running machine is left as it was.
func (e *Emulator) reset(rom []byte) error {
	if err := e.Machine.Reset(rom); err != nil {
		return err
	}
	if e.statePath == defaultStatePath(e.rom) {
		e.statePath = defaultStatePath(rom)
	}
	e.rom = rom
	e.silence()
	e.Infof("reset with ROM %016x", emulator.Fingerprint(rom))
	return nil
}

// SaveState serializes the machine.
func (e *Emulator) SaveState() []byte {
	st := types.NewState()
	e.Machine.Save(st)
	return st.Bytes()
}

func (e *Emulator) saveState() ([]byte, error) {
	b := e.SaveState()
	if err := emulator.WriteState(e.statePath, b); err != nil {
		return b, err
	}
	e.Infof("saved state to %s", e.statePath)
	return b, nil
}

func (e *Emulator) loadStateCommand(b []byte) error {
	if len(b) == 0 {
		var err error
		if b, err = emulator.ReadState(e.statePath); err != nil {
			return err
		}
	}
	if err := e.loadState(b); err != nil {
		return err
	}
	e.Infof("loaded state")
	return nil
}

func (e *Emulator) loadState(b []byte) error {
	if err := e.Machine.Load(types.StateFromBytes(b)); err != nil {
		return err
	}
	e.updateBeeper()
	return nil
}

// StatePath returns the file SaveState and LoadState commands use.
func (e *Emulator) StatePath() string {
	return e.statePath
}
