package cpu

import (
	"errors"
	"fmt"
)

// UnknownOpcodeError is returned by Step when the word at the program
// counter does not decode to an instruction. The program counter has
// already been moved past the word, so execution may continue.
type UnknownOpcodeError struct {
	Word    uint16
	Address uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unsupported instruction 0x%04X (%X %X %X %X) at 0x%03X",
		e.Word, e.Word>>12, e.Word>>8&0xF, e.Word>>4&0xF, e.Word&0xF, e.Address)
}

// IsFatal reports whether err returned by Step should halt the
// interpreter. Only unknown opcodes are recoverable.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var unknown *UnknownOpcodeError
	return !errors.As(err, &unknown)
}
