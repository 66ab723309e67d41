package chip8

type fakeDisplay struct {
	pixels  [DisplayHeight][DisplayWidth]bool
	clears  int
	renders int
}

func (d *fakeDisplay) Clear() {
	d.pixels = [DisplayHeight][DisplayWidth]bool{}
	d.clears++
}

func (d *fakeDisplay) FlipPixel(x, y uint8) bool {
	d.pixels[y][x] = !d.pixels[y][x]
	return !d.pixels[y][x]
}

func (d *fakeDisplay) Render() {
	d.renders++
}

type fakeKeypad struct {
	down    uint16
	pressed []uint8
}

func (k *fakeKeypad) KeyDown(key uint8) bool {
	return k.down&(1<<(key&0xF)) != 0
}

func (k *fakeKeypad) KeyPressed() (uint8, bool) {
	if len(k.pressed) == 0 {
		return 0, false
	}
	key := k.pressed[0]
	k.pressed = k.pressed[1:]
	return key, true
}

func (k *fakeKeypad) Update() bool {
	return false
}
