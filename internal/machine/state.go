package machine

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/go-chip8/internal/types"
)

// stateMagic identifies a serialized machine, followed by a version byte.
var stateMagic = [4]byte{'C', '8', 'S', 'T'}

const stateVersion = 1

var (
	// ErrNotAState is returned when loading data that was not produced by Save.
	ErrNotAState = errors.New("not a chip-8 state")
	// ErrStateVersion is returned when loading a state of an unknown version.
	ErrStateVersion = errors.New("unsupported state version")
)

var _ types.Stater = (*State)(nil)

// Save writes the complete machine into st.
func (s *State) Save(st *types.State) {
	st.WriteData(stateMagic[:])
	st.Write8(stateVersion)

	st.WriteData(s.Memory[:])
	st.WriteData(s.V[:])
	st.Write16(s.I)
	st.Write16(s.PC)
	for _, addr := range s.Stack {
		st.Write16(addr)
	}
	st.Write8(s.SP)
	st.Write8(s.DelayTimer)
	st.Write8(s.SoundTimer)
	st.Write16(s.Keys)
	st.Write16(s.PreviousKeys)

	f := s.Display.Frame()
	st.WriteData(f.Pack())
}

// Load replaces the machine with the one stored in st. The machine
// is only modified if the whole state could be read.
func (s *State) Load(st *types.State) error {
	var magic [4]byte
	if err := st.ReadData(magic[:]); err != nil || magic != stateMagic {
		return ErrNotAState
	}
	version, err := st.Read8()
	if err != nil {
		return err
	}
	if version != stateVersion {
		return fmt.Errorf("%w: %d", ErrStateVersion, version)
	}

	var n State
	r := reader{st: st}
	r.data(n.Memory[:])
	r.data(n.V[:])
	n.I = r.u16()
	n.PC = r.u16()
	for i := range n.Stack {
		n.Stack[i] = r.u16()
	}
	n.SP = r.u8() % types.StackSize
	n.DelayTimer = r.u8()
	n.SoundTimer = r.u8()
	n.Keys = r.u16()
	n.PreviousKeys = r.u16()
	packed := make([]byte, types.PixelCount/8)
	r.data(packed)
	if r.err != nil {
		return fmt.Errorf("loading state: %w", r.err)
	}

	n.Display.SetFrame(types.Unpack(packed))
	*s = n
	return nil
}

// reader remembers the first error encountered, so a sequence of
// reads can be checked once.
type reader struct {
	st  *types.State
	err error
}

func (r *reader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	var v uint8
	v, r.err = r.st.Read8()
	return v
}

func (r *reader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	var v uint16
	v, r.err = r.st.Read16()
	return v
}

func (r *reader) data(p []byte) {
	if r.err != nil {
		return
	}
	r.err = r.st.ReadData(p)
}
