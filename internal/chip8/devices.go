package chip8

// Display is the monochrome presentation surface the interpreter draws to.
type Display interface {
	// Clear turns all pixels off.
	Clear()
	// FlipPixel toggles the pixel and reports whether it ended off.
	FlipPixel(x, y uint8) bool
	// Render presents the current pixel state.
	Render()
}

// Keypad is the 16 key hexadecimal input device.
type Keypad interface {
	// KeyDown reports whether the key is held in the current snapshot.
	KeyDown(key uint8) bool
	// KeyPressed returns a key that went down between the previous and
	// the current snapshot.
	KeyPressed() (uint8, bool)
	// Update advances the input snapshot and reports whether the user
	// requested to quit.
	Update() bool
}
