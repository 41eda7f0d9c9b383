// Package machine holds the state of a CHIP-8 virtual machine: its
// memory, registers, call stack, timers, input latch and display.
// It is a passive record; the cpu package is the only thing that
// executes instructions against it.
package machine

import (
	"github.com/thelolagemann/go-chip8/internal/types"
)

// State is the complete state of a CHIP-8 machine. A State is
// owned by a single interpreter for its lifetime and must not be
// shared between goroutines.
type State struct {
	// Memory is the 4kB address space. The font lives at
	// types.FontStart and the program at types.ProgramStart.
	Memory [types.MemorySize]byte

	// V contains the general purpose registers V0 to VF.
	V [types.RegisterCount]uint8
	// I is the index register.
	I uint16
	// PC is the program counter, the address of the next instruction.
	PC uint16

	// Stack holds return addresses, SP is the index of the next free
	// slot. SP is only ever modified modulo types.StackSize.
	Stack [types.StackSize]uint16
	SP    uint8

	// DelayTimer and SoundTimer count down once per frame until zero.
	DelayTimer uint8
	SoundTimer uint8

	// Keys is the input latch, one bit per key. PreviousKeys is the
	// value of Keys immediately before its most recent edit.
	Keys         uint16
	PreviousKeys uint16

	Display Display
}

// New returns a machine with the font loaded, every register
// cleared, the program copied to types.ProgramStart and the program
// counter pointing at it. A *LoadError is returned if the program
// does not fit.
func New(program []byte) (*State, error) {
	s := &State{}
	if err := s.Reset(program); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset returns the machine to its power-on state with the given
// program loaded. The machine is left untouched if the program does
// not fit.
func (s *State) Reset(program []byte) error {
	if len(program) > types.MaxProgramSize {
		return &LoadError{Size: len(program)}
	}

	*s = State{PC: types.ProgramStart}
	copy(s.Memory[types.FontStart:], Font[:])
	copy(s.Memory[types.ProgramStart:], program)
	s.Display.dirty = true

	return nil
}

// Program returns a copy of the program space.
func (s *State) Program() []byte {
	p := make([]byte, types.MaxProgramSize)
	copy(p, s.Memory[types.ProgramStart:])
	return p
}

// Flag returns the value of VF.
func (s *State) Flag() uint8 {
	return s.V[types.FlagRegister]
}

// SetFlag sets VF to 1 if set is true, otherwise 0.
func (s *State) SetFlag(set bool) {
	if set {
		s.V[types.FlagRegister] = 1
	} else {
		s.V[types.FlagRegister] = 0
	}
}

// Push stores addr at the top of the stack. The stack pointer wraps
// around after the 16th entry, overwriting the oldest address.
func (s *State) Push(addr uint16) {
	s.Stack[s.SP] = addr
	s.SP = (s.SP + 1) % types.StackSize
}

// Pop removes and returns the address at the top of the stack. Popping
// an empty stack wraps around to the last slot.
func (s *State) Pop() uint16 {
	s.SP = (s.SP + types.StackSize - 1) % types.StackSize
	return s.Stack[s.SP]
}

// DecrementTimers counts both timers down by one, stopping at zero.
// It is called once per frame by the outer loop.
func (s *State) DecrementTimers() {
	if s.DelayTimer > 0 {
		s.DelayTimer--
	}
	if s.SoundTimer > 0 {
		s.SoundTimer--
	}
}

// Beeping reports whether the sound timer is active.
func (s *State) Beeping() bool {
	return s.SoundTimer > 0
}
