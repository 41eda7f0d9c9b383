// Package emulator runs a CHIP-8 interpreter in real time, pacing it
// against the 60Hz frame rate, exchanging frames and key presses with a
// display driver, and handling the commands the driver sends to it.
package emulator

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/thelolagemann/go-chip8/internal/cpu"
	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/machine"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/display/event"
	"github.com/thelolagemann/go-chip8/pkg/emulator"
	"github.com/thelolagemann/go-chip8/pkg/log"
)

const (
	// FrameRate is the number of frames emulated per second at normal speed.
	FrameRate = 60
	// FrameTime is the duration of a single frame at normal speed.
	FrameTime = time.Second / FrameRate
	// DefaultInstructionsPerFrame is the number of instructions executed
	// each frame unless configured otherwise.
	DefaultInstructionsPerFrame = 10
)

var _ emulator.Controller = (*Emulator)(nil)

// Beeper is switched on while the sound timer is active.
type Beeper interface {
	SetActive(active bool)
}

// FrameRecorder receives the time taken to emulate each frame.
type FrameRecorder interface {
	Record(d time.Duration)
}

// Emulator owns a machine and the interpreter that executes
// against it. Once Start has been called, the machine is only
// touched by the goroutine running Start; other goroutines talk to
// it through SendCommand.
type Emulator struct {
	CPU     *cpu.CPU
	Machine *machine.State

	log.Logger

	rom       []byte
	title     string
	statePath string

	instructionsPerFrame int
	speed                atomic.Uint64 // float64 bits
	status               atomic.Int32

	beeper   Beeper
	beeping  bool
	recorder FrameRecorder

	cpuOpts      []cpu.Option
	initialState []byte
	resume       bool

	commands chan command
	done     chan struct{}
}

// command pairs a packet with the channel its response is sent on.
type command struct {
	packet emulator.CommandPacket
	reply  chan emulator.ResponsePacket
}

// New creates an emulator with rom loaded. A *machine.LoadError is
// returned if rom is too large, or an error if the state given by
// WithState could not be loaded.
func New(rom []byte, opts ...Opt) (*Emulator, error) {
	m, err := machine.New(rom)
	if err != nil {
		return nil, err
	}

	e := &Emulator{
		Machine:              m,
		Logger:               log.NewNullLogger(),
		rom:                  rom,
		title:                "CHIP-8",
		statePath:            defaultStatePath(rom),
		instructionsPerFrame: DefaultInstructionsPerFrame,
		commands:             make(chan command),
		done:                 make(chan struct{}),
	}
	e.speed.Store(math.Float64bits(1))
	e.status.Store(int32(emulator.Halted))

	for _, opt := range opts {
		opt(e)
	}

	e.CPU = cpu.New(m, append([]cpu.Option{cpu.WithLogger(e.Logger)}, e.cpuOpts...)...)

	if e.resume && e.initialState == nil {
		if e.initialState, err = emulator.ReadState(e.statePath); err != nil {
			return nil, fmt.Errorf("resuming: %w", err)
		}
	}
	if e.initialState != nil {
		if err := e.loadState(e.initialState); err != nil {
			return nil, fmt.Errorf("loading initial state: %w", err)
		}
	}

	e.Infof("loaded ROM %016x (%d bytes)", emulator.Fingerprint(rom), len(rom))
	return e, nil
}

// Frame emulates a single frame: it executes the configured number of
// instructions, then counts the timers down once. Unknown opcodes are
// skipped. Any other error stops the frame and is returned.
func (e *Emulator) Frame() error {
	for i := 0; i < e.instructionsPerFrame; i++ {
		if err := e.CPU.Step(); err != nil && cpu.IsFatal(err) {
			return err
		}
	}

	e.Machine.DecrementTimers()
	e.updateBeeper()

	return nil
}

func (e *Emulator) updateBeeper() {
	beeping := e.Machine.Beeping()
	if e.beeper != nil && beeping != e.beeping {
		e.beeper.SetActive(beeping)
	}
	e.beeping = beeping
}

// Start runs the emulator until it is closed or hits a fatal error,
// which is returned. Frames are sent on frames whenever the display
// has changed, and key presses received from pressed and released are
// applied to the machine between frames.
func (e *Emulator) Start(frames chan<- types.Frame, events chan<- event.Event, pressed, released <-chan keypad.Key) error {
	defer close(e.done)
	e.status.Store(int32(emulator.Running))

	ticker := time.NewTicker(e.frameInterval())
	defer ticker.Stop()
	second := time.NewTicker(time.Second)
	defer second.Stop()

	sendEvent := func(ev event.Event) {
		select {
		case events <- ev:
		default:
		}
	}

	var (
		frameCount int
		busy       time.Duration
		sound      bool
	)
	notifySound := func() {
		if e.beeping != sound {
			sound = e.beeping
			sendEvent(event.Event{Type: event.Sound, Data: sound})
		}
	}

	for {
		select {
		case k := <-pressed:
			e.Machine.Press(k)
		case k := <-released:
			e.Machine.Release(k)
		case cmd := <-e.commands:
			resp := e.handle(cmd.packet)
			cmd.reply <- resp
			if cmd.packet.Command == emulator.CommandClose {
				e.status.Store(int32(emulator.Halted))
				sendEvent(event.Event{Type: event.Quit})
				return nil
			}
			if cmd.packet.Command == emulator.CommandSetSpeed && resp.Error == nil {
				ticker.Reset(e.frameInterval())
			}
			notifySound()
		case <-ticker.C:
			if e.Status() != emulator.Running {
				continue
			}

			start := time.Now()
			if err := e.Frame(); err != nil {
				e.status.Store(int32(emulator.Errored))
				e.Errorf("halting: %v", err)
				e.silence()
				sendEvent(event.Event{Type: event.Error, Data: err})
				return err
			}
			elapsed := time.Since(start)
			busy += elapsed
			frameCount++
			if e.recorder != nil {
				e.recorder.Record(elapsed)
			}
			notifySound()

			if e.Machine.Display.NeedsRepaint() {
				select {
				case frames <- e.Machine.Display.Frame():
					e.Machine.Display.MarkPresented()
				default:
					// driver is behind, try again next frame
				}
			}
		case <-second.C:
			sendEvent(event.Event{Type: event.Title, Data: fmt.Sprintf("%s | FPS: %d", e.title, frameCount)})
			if frameCount > 0 {
				sendEvent(event.Event{Type: event.FrameTime, Data: busy / time.Duration(frameCount)})
			}
			frameCount, busy = 0, 0
		}
	}
}

// SendCommand sends a command to the running emulator and waits for
// its response. Commands sent before Start or after the emulator has
// stopped are answered with emulator.ErrClosed.
func (e *Emulator) SendCommand(packet emulator.CommandPacket) emulator.ResponsePacket {
	if e.Status() == emulator.Halted {
		return emulator.ResponsePacket{Command: packet.Command, Error: emulator.ErrClosed}
	}

	reply := make(chan emulator.ResponsePacket, 1)
	select {
	case e.commands <- command{packet: packet, reply: reply}:
		return <-reply
	case <-e.done:
		return emulator.ResponsePacket{Command: packet.Command, Error: emulator.ErrClosed}
	}
}

// Speed returns the speed multiplier of the emulator.
func (e *Emulator) Speed() float64 {
	return math.Float64frombits(e.speed.Load())
}

// Status returns the status of the emulator.
func (e *Emulator) Status() emulator.Status {
	return emulator.Status(e.status.Load())
}

// Title returns the title shown by display drivers.
func (e *Emulator) Title() string {
	return e.title
}

func (e *Emulator) frameInterval() time.Duration {
	return max(time.Duration(float64(FrameTime)/e.Speed()), time.Nanosecond)
}

// silence switches the beeper off, as when pausing or halting.
func (e *Emulator) silence() {
	if e.beeper != nil && e.beeping {
		e.beeper.SetActive(false)
	}
	e.beeping = false
}
