package types

import (
	"errors"
	"fmt"
	"os"
)

// ErrStateTruncated is returned when reading past the end of a State.
var ErrStateTruncated = errors.New("state truncated")

// State is a binary snapshot of the machine. It is used to save
// and load states between runs.
type State struct {
	raw           []byte // raw state data (for serialization)
	readPosition  int    // current read position
	writePosition int    // current write position
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) error // Load the state of the object
	Save(*State)       // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// StateFromFile reads a state previously written with SaveToFile.
func StateFromFile(filename string) (*State, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	return StateFromBytes(b), nil
}

// ResetPosition resets the read and write positions,
// allowing the state to be read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.writePosition = 0
}

// Remaining returns the number of bytes left to read.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
	s.writePosition++
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
	s.writePosition += 2
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
	s.writePosition++
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
	s.writePosition += len(data)
}

func (s *State) Read8() (uint8, error) {
	if s.Remaining() < 1 {
		return 0, ErrStateTruncated
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value, nil
}

func (s *State) Read16() (uint16, error) {
	if s.Remaining() < 2 {
		return 0, ErrStateTruncated
	}
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value, nil
}

func (s *State) ReadBool() (bool, error) {
	v, err := s.Read8()
	return v != 0, err
}

// ReadData fills p from the state.
func (s *State) ReadData(p []byte) error {
	if s.Remaining() < len(p) {
		return ErrStateTruncated
	}
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
	return nil
}

func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

func (s *State) Bytes() []byte {
	return s.raw
}
