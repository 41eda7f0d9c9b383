package emulator

import (
	"encoding/binary"
	"errors"
	"math"
)

// CommandPacket is a command packet that is sent to the
// emulator to control it.
type CommandPacket struct {
	Command Command
	Data    []byte
}

// Command is a command that is sent to the emulator to
// control it.
type Command int

// ResponsePacket is a response packet that is sent
// from the emulator to the client.
type ResponsePacket struct {
	Command Command
	Data    []byte
	Error   error
}

const (
	// CommandPause pauses the emulator.
	CommandPause Command = iota
	// CommandResume resumes the emulator.
	CommandResume
	// CommandClose closes the emulator.
	CommandClose
	// CommandReset resets the emulator, reloading the current ROM.
	CommandReset
	// CommandLoadROM replaces the running ROM with the one in Data.
	CommandLoadROM
	// CommandSaveState saves the machine to the state file. The
	// response carries the serialized state.
	CommandSaveState
	// CommandLoadState restores the machine from Data, or from the
	// state file when Data is empty.
	CommandLoadState
	// CommandSetSpeed sets the speed of the emulator, see SetSpeed.
	CommandSetSpeed
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "Pause"
	case CommandResume:
		return "Resume"
	case CommandClose:
		return "Close"
	case CommandReset:
		return "Reset"
	case CommandLoadROM:
		return "LoadROM"
	case CommandSaveState:
		return "SaveState"
	case CommandLoadState:
		return "LoadState"
	case CommandSetSpeed:
		return "SetSpeed"
	default:
		return "Unknown"
	}
}

var (
	// ErrClosed is returned in response to a command sent to an
	// emulator that is no longer running.
	ErrClosed = errors.New("emulator closed")
	// ErrUnknownCommand is returned in response to an unrecognised command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidSpeed is returned when a CommandSetSpeed packet does not
	// carry a positive speed.
	ErrInvalidSpeed = errors.New("invalid speed")
)

// SetSpeed returns a packet that sets the emulator to run at speed
// times its normal rate.
func SetSpeed(speed float64) CommandPacket {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(speed))
	return CommandPacket{Command: CommandSetSpeed, Data: b}
}

// ParseSpeed decodes the speed carried by a CommandSetSpeed packet.
func ParseSpeed(p CommandPacket) (float64, error) {
	if len(p.Data) != 8 {
		return 0, ErrInvalidSpeed
	}
	speed := math.Float64frombits(binary.LittleEndian.Uint64(p.Data))
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return 0, ErrInvalidSpeed
	}
	return speed, nil
}
