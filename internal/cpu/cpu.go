// Package cpu implements the CHIP-8 interpreter: it fetches, decodes
// and executes a single instruction at a time against a machine.State.
package cpu

import (
	"math/rand"
	"time"

	"github.com/thelolagemann/go-chip8/internal/machine"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/log"
)

// CPU executes instructions against the machine it was created with.
// The machine must not be modified by anything else while Step runs.
type CPU struct {
	m      *machine.State
	random func() uint8
	log    log.Logger

	// Debug traces every executed instruction through the logger.
	Debug bool

	// Executed counts the instructions that have executed.
	Executed uint64
}

// Option configures a CPU.
type Option func(*CPU)

// WithRandom sets the source of random bytes for RND. The default
// source is seeded from the current time.
func WithRandom(fn func() uint8) Option {
	return func(c *CPU) {
		c.random = fn
	}
}

// WithLogger sets the logger unknown opcodes and debug traces are
// written to.
func WithLogger(l log.Logger) Option {
	return func(c *CPU) {
		c.log = l
	}
}

// WithDebug enables instruction tracing.
func WithDebug(enabled bool) Option {
	return func(c *CPU) {
		c.Debug = enabled
	}
}

// New returns a CPU that executes against m.
func New(m *machine.State, opts ...Option) *CPU {
	c := &CPU{
		m:   m,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.random == nil {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		c.random = func() uint8 { return uint8(r.Intn(256)) }
	}
	return c
}

// Machine returns the machine the CPU executes against.
func (c *CPU) Machine() *machine.State {
	return c.m
}

// Step executes a single instruction. An *UnknownOpcodeError is
// returned after moving past a word that is not an instruction; use
// IsFatal to tell it apart from errors that must halt the interpreter.
func (c *CPU) Step() error {
	pc := c.m.PC
	word, err := c.m.Fetch()
	if err != nil {
		return err
	}

	instr, ok := Decode(word)
	if !ok {
		err := &UnknownOpcodeError{Word: word, Address: pc}
		c.log.Errorf("%v", err)
		c.m.PC += types.InstructionSize
		return err
	}

	if c.Debug {
		c.log.Debugf("%03X: %04X %s", pc, word, instr)
	}

	advance, err := c.Execute(instr)
	if err != nil {
		return err
	}
	c.m.PC += uint16(advance)
	c.Executed++

	return nil
}

// Execute runs the handler for instr and returns how far the program
// counter should advance. The program counter itself is only modified
// by instructions that jump.
//
// Instructions produced by Decode always have a handler. An
// Instruction built by hand with an Op outside of the table is
// rejected with an UnknownOpcodeError and leaves the machine untouched.
func (c *CPU) Execute(instr Instruction) (Advance, error) {
	if instr.Op >= opCount || InstructionSet[instr.Op].fn == nil {
		return AdvanceNone, &UnknownOpcodeError{Word: instr.Word, Address: c.m.PC}
	}
	return InstructionSet[instr.Op].fn(c, instr)
}

// skipIf returns AdvanceSkip if cond is true, otherwise AdvanceNext.
func skipIf(cond bool) Advance {
	if cond {
		return AdvanceSkip
	}
	return AdvanceNext
}
