package machine

import "github.com/thelolagemann/go-chip8/internal/keypad"

// Press marks k as held. The latch is snapshotted into PreviousKeys
// before it is edited.
func (s *State) Press(k keypad.Key) {
	s.PreviousKeys = s.Keys
	s.Keys |= keypad.Mask(k)
}

// Release marks k as no longer held. The latch is snapshotted into
// PreviousKeys before it is edited.
func (s *State) Release(k keypad.Key) {
	s.PreviousKeys = s.Keys
	s.Keys &^= keypad.Mask(k)
}

// IsPressed reports whether the key with the value of the low nibble
// of k is held.
func (s *State) IsPressed(k uint8) bool {
	return s.Keys&keypad.Mask(k) != 0
}

// Released returns the lowest key that was held before the most
// recent edit of the latch and is not held now.
func (s *State) Released() (keypad.Key, bool) {
	released := s.PreviousKeys &^ s.Keys
	for k := keypad.Key(0); k < keypad.Count; k++ {
		if released&keypad.Mask(k) != 0 {
			return k, true
		}
	}
	return 0, false
}
