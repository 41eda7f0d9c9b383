package types

// MemorySize is the size of the CHIP-8 address space in bytes.
const MemorySize = 0x1000

// The CHIP-8 memory map.
//
//	0x000-0x04F: built-in hexadecimal font (16 glyphs, 5 bytes each)
//	0x050-0x1FF: reserved for the interpreter
//	0x200-0xFFF: program and data space
const (
	// FontStart is the address of the glyph for digit 0.
	FontStart uint16 = 0x000
	// GlyphSize is the number of bytes (rows) in a single font glyph.
	GlyphSize = 5
	// FontSize is the size of the complete font table in bytes.
	FontSize = 16 * GlyphSize
	// ProgramStart is where programs are loaded, and where execution begins.
	ProgramStart uint16 = 0x200
	// MaxProgramSize is the largest program image that fits in memory.
	MaxProgramSize = MemorySize - int(ProgramStart)
)

const (
	// RegisterCount is the number of general purpose registers, V0 to VF.
	RegisterCount = 16
	// FlagRegister is the index of VF, which doubles as the carry, borrow
	// and collision flag.
	FlagRegister = 0xF
	// StackSize is the number of return addresses the call stack can hold.
	StackSize = 16
	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16
	// InstructionSize is the width of an instruction word in bytes.
	InstructionSize = 2
)
