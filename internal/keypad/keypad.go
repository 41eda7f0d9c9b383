// Package keypad describes the CHIP-8 hexadecimal keypad, and how
// the keys of a modern keyboard are laid out over it.
package keypad

import "fmt"

// Key represents a key on the hexadecimal keypad, 0x0 to 0xF.
type Key = uint8

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

// Count is the number of keys on the keypad.
const Count = 16

// Layout maps characters of a QWERTY keyboard onto the keypad. The
// left-hand 4x4 block of the keyboard is used, matching the physical
// arrangement of the COSMAC VIP keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var Layout = map[rune]Key{
	'1': Key1, '2': Key2, '3': Key3, '4': KeyC,
	'q': Key4, 'w': Key5, 'e': Key6, 'r': KeyD,
	'a': Key7, 's': Key8, 'd': Key9, 'f': KeyE,
	'z': KeyA, 'x': Key0, 'c': KeyB, 'v': KeyF,
}

// Lookup returns the keypad key for the given keyboard character.
// Upper case letters are treated the same as lower case.
func Lookup(r rune) (Key, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	k, ok := Layout[r]
	return k, ok
}

// Name returns the hexadecimal digit printed on the key.
func Name(k Key) string {
	return fmt.Sprintf("%X", k&0xF)
}

// Mask returns the bit representing k in an input latch.
func Mask(k Key) uint16 {
	return 1 << (k & 0xF)
}
