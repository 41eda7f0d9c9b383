package machine

import (
	"fmt"

	"github.com/thelolagemann/go-chip8/internal/types"
)

// LoadError is returned when a program image does not fit into
// the program space of memory.
type LoadError struct {
	Size int // size of the rejected program in bytes
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("program is %d bytes, the maximum is %d bytes", e.Size, types.MaxProgramSize)
}

// Access describes the kind of memory access that went out of bounds.
type Access uint8

const (
	AccessFetch Access = iota
	AccessRead
	AccessWrite
)

func (a Access) String() string {
	switch a {
	case AccessFetch:
		return "fetch"
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	}
	return "access"
}

// OutOfBoundsError is returned when an instruction fetch or a data
// access falls outside of the memory it is allowed to touch. It is
// always fatal to the interpreter.
type OutOfBoundsError struct {
	Access  Access
	Address uint16 // first offending address
	Length  int    // length of the attempted access
	Bytes   []byte // raw bytes available at the address, if any
}

func (e *OutOfBoundsError) Error() string {
	if e.Access == AccessWrite && e.Address < types.MemorySize {
		return fmt.Sprintf("%s of %d byte(s) at 0x%04X outside of program space 0x%03X-0x%03X", e.Access, e.Length, e.Address, types.ProgramStart, types.MemorySize-1)
	}
	return fmt.Sprintf("%s of %d byte(s) at 0x%04X beyond end of memory (raw % X)", e.Access, e.Length, e.Address, e.Bytes)
}
