package machine

import "github.com/thelolagemann/go-chip8/internal/types"

// Fetch reads the big-endian instruction word at the program counter.
// The program counter is not modified.
func (s *State) Fetch() (uint16, error) {
	pc := s.PC
	if int(pc)+1 >= types.MemorySize {
		return 0, &OutOfBoundsError{
			Access:  AccessFetch,
			Address: pc,
			Length:  types.InstructionSize,
			Bytes:   s.tail(pc),
		}
	}
	return uint16(s.Memory[pc])<<8 | uint16(s.Memory[pc+1]), nil
}

// Read returns the byte at addr.
func (s *State) Read(addr uint16) (byte, error) {
	if int(addr) >= types.MemorySize {
		return 0, &OutOfBoundsError{Access: AccessRead, Address: addr, Length: 1}
	}
	return s.Memory[addr], nil
}

// ReadRange returns n bytes starting at addr. The returned slice
// aliases memory.
func (s *State) ReadRange(addr uint16, n int) ([]byte, error) {
	if int(addr)+n > types.MemorySize {
		return nil, &OutOfBoundsError{Access: AccessRead, Address: addr, Length: n, Bytes: s.tail(addr)}
	}
	return s.Memory[addr : int(addr)+n], nil
}

// Write stores v at addr. Only the program space is writable; the
// font and interpreter area below types.ProgramStart are read-only.
func (s *State) Write(addr uint16, v byte) error {
	return s.WriteRange(addr, []byte{v})
}

// WriteRange copies data into memory starting at addr. Nothing is
// written unless the whole range is writable.
func (s *State) WriteRange(addr uint16, data []byte) error {
	if addr < types.ProgramStart || int(addr)+len(data) > types.MemorySize {
		return &OutOfBoundsError{Access: AccessWrite, Address: addr, Length: len(data), Bytes: s.tail(addr)}
	}
	copy(s.Memory[addr:], data)
	return nil
}

// tail returns the bytes from addr up to the end of memory, for
// diagnostics.
func (s *State) tail(addr uint16) []byte {
	if int(addr) >= types.MemorySize {
		return nil
	}
	b := make([]byte, types.MemorySize-int(addr))
	copy(b, s.Memory[addr:])
	return b
}
