package emulator

import (
	"math"

	"github.com/thelolagemann/go-chip8/internal/cpu"
	"github.com/thelolagemann/go-chip8/pkg/emulator"
	"github.com/thelolagemann/go-chip8/pkg/log"
)

// Opt is a function that modifies an Emulator
// instance.
type Opt func(e *Emulator)

// Debug traces every executed instruction.
func Debug() Opt {
	return func(e *Emulator) {
		e.cpuOpts = append(e.cpuOpts, cpu.WithDebug(true))
	}
}

func WithLogger(log log.Logger) Opt {
	return func(e *Emulator) {
		e.Logger = log
	}
}

// WithState restores the machine from a save state after it has
// been created.
func WithState(b []byte) Opt {
	return func(e *Emulator) {
		e.initialState = b
	}
}

// Resume restores the machine from the state file once it has been
// created.
func Resume() Opt {
	return func(e *Emulator) {
		e.resume = true
	}
}

// WithStateFile sets the path save states are written to and read
// from. It defaults to a file named after the ROM in the working
// directory.
func WithStateFile(path string) Opt {
	return func(e *Emulator) {
		e.statePath = path
	}
}

// InstructionsPerFrame sets how many instructions are executed for
// each 60Hz frame. Values below 1 are ignored.
func InstructionsPerFrame(n int) Opt {
	return func(e *Emulator) {
		if n > 0 {
			e.instructionsPerFrame = n
		}
	}
}

// Speed sets the speed multiplier. Values that are not positive
// are ignored.
func Speed(speed float64) Opt {
	return func(e *Emulator) {
		if speed > 0 && !math.IsInf(speed, 0) {
			e.speed.Store(math.Float64bits(speed))
		}
	}
}

// WithRandom sets the source of random bytes for the RND instruction.
func WithRandom(fn func() uint8) Opt {
	return func(e *Emulator) {
		e.cpuOpts = append(e.cpuOpts, cpu.WithRandom(fn))
	}
}

// WithBeeper attaches a beeper that is switched on while the sound
// timer is active.
func WithBeeper(b Beeper) Opt {
	return func(e *Emulator) {
		e.beeper = b
	}
}

// WithRecorder records how long each frame takes to emulate.
func WithRecorder(r FrameRecorder) Opt {
	return func(e *Emulator) {
		e.recorder = r
	}
}

// WithTitle sets the name shown in the window title.
func WithTitle(title string) Opt {
	return func(e *Emulator) {
		e.title = title
	}
}

func defaultStatePath(rom []byte) string {
	return emulator.StateFile("", rom)
}
