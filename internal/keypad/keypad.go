// Package keypad implements the 16 key hexadecimal keypad state with edge
// detection between snapshots.
package keypad

import (
	"math/bits"
	"strings"
)

// Layout maps the keypad keys 0-F to keyboard characters, indexed by key:
//
//	1 2 3 C     1 2 3 4
//	4 5 6 D  →  Q W E R
//	7 8 9 E     A S D F
//	A 0 B F     Z X C V
const Layout = "x123qweasdzc4rfv"

// KeyCount is the number of keypad keys.
const KeyCount = 16

// Keypad holds the current and the previous key snapshot as bitmasks.
type Keypad struct {
	current  uint16
	previous uint16
}

// New returns a keypad with no keys held.
func New() *Keypad {
	return &Keypad{}
}

// Advance makes the current snapshot the previous one and stores the new
// mask of held keys, bit n set meaning key n is held.
func (k *Keypad) Advance(mask uint16) {
	k.previous = k.current
	k.current = mask
}

// KeyDown reports whether the key is held, only the low nibble of key is used.
func (k *Keypad) KeyDown(key uint8) bool {
	return k.current&(1<<(key&0x0F)) != 0
}

// KeyPressed returns the lowest key that is held now but was not held in
// the previous snapshot.
func (k *Keypad) KeyPressed() (uint8, bool) {
	pressed := k.current &^ k.previous
	if pressed == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(pressed)), true
}

// Mask returns the current snapshot.
func (k *Keypad) Mask() uint16 {
	return k.current
}

// KeyForRune returns the keypad key mapped to a keyboard character.
func KeyForRune(r rune) (uint8, bool) {
	i := strings.IndexRune(Layout, toLower(r))
	if i < 0 {
		return 0, false
	}
	return uint8(i), true
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
