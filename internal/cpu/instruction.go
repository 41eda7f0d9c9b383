package cpu

import (
	"fmt"
	"strings"
)

// Op identifies a decoded CHIP-8 operation.
type Op uint8

const (
	OpCLS    Op = iota // 00E0
	OpRET              // 00EE
	OpJP               // 1nnn
	OpCALL             // 2nnn
	OpSEImm            // 3xkk
	OpSNEImm           // 4xkk
	OpSEReg            // 5xy0
	OpLDImm            // 6xkk
	OpADDImm           // 7xkk
	OpLDReg            // 8xy0
	OpOR               // 8xy1
	OpAND              // 8xy2
	OpXOR              // 8xy3
	OpADD              // 8xy4
	OpSUB              // 8xy5
	OpSHR              // 8xy6
	OpSUBN             // 8xy7
	OpSHL              // 8xyE
	OpSNEReg           // 9xy0
	OpLDI              // Annn
	OpJPV0             // Bnnn
	OpRND              // Cxkk
	OpDRW              // Dxyn
	OpSKP              // Ex9E
	OpSKNP             // ExA1
	OpLDVxDT           // Fx07
	OpLDVxK            // Fx0A
	OpLDDTVx           // Fx15
	OpLDSTVx           // Fx18
	OpADDI             // Fx1E
	OpLDF              // Fx29
	OpLDB              // Fx33
	OpLDIVx            // Fx55
	OpLDVxI            // Fx65

	opCount
)

// Advance is the number of bytes the program counter moves forward
// after an instruction has executed.
type Advance uint16

const (
	// AdvanceNone leaves the program counter where the instruction put it.
	AdvanceNone Advance = 0
	// AdvanceNext moves to the following instruction.
	AdvanceNext Advance = 2
	// AdvanceSkip skips the following instruction.
	AdvanceSkip Advance = 4
)

// Instruction is a decoded instruction word. Only the operands used
// by Op are meaningful, but all of them are always populated from Word.
type Instruction struct {
	Op   Op
	Word uint16

	X   uint8  // second nibble
	Y   uint8  // third nibble
	N   uint8  // fourth nibble
	KK  uint8  // low byte
	NNN uint16 // low 12 bits
}

// String returns the instruction in assembly form, e.g. "ADD V0, V1".
func (i Instruction) String() string {
	if i.Op >= opCount || InstructionSet[i.Op].fn == nil {
		return fmt.Sprintf("DW 0x%04X", i.Word)
	}
	return strings.NewReplacer(
		"{x}", fmt.Sprintf("%X", i.X),
		"{y}", fmt.Sprintf("%X", i.Y),
		"{n}", fmt.Sprintf("%d", i.N),
		"{kk}", fmt.Sprintf("0x%02X", i.KK),
		"{nnn}", fmt.Sprintf("0x%03X", i.NNN),
	).Replace(InstructionSet[i.Op].name)
}

type handler func(c *CPU, i Instruction) (Advance, error)

type definition struct {
	name string
	fn   handler
}

// InstructionSet holds the assembly template and handler of every Op.
var InstructionSet [opCount]definition

// DefineInstruction registers the handler for op. name is the assembly
// template used to trace the instruction, with {x}, {y}, {n}, {kk}
// and {nnn} substituted by the operands.
func DefineInstruction(op Op, name string, fn handler) {
	InstructionSet[op] = definition{
		name: name,
		fn:   fn,
	}
}

// Name returns the assembly template of op.
func (o Op) Name() string {
	if o >= opCount {
		return "?"
	}
	return InstructionSet[o].name
}
