package ebitenwindow

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestPixelsToRGBA(t *testing.T) {
	var pixels framebuffer.Pixels
	pixels[0][1] = true

	buf := pixelsToRGBA(pixels, nil)
	assert.Len(t, buf, framebuffer.Width*framebuffer.Height*4)
	assert.Equal(t, []byte{0, 0, 0, 0xFF}, buf[0:4])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf[4:8])

	reused := pixelsToRGBA(framebuffer.Pixels{}, buf)
	assert.Equal(t, byte(0), reused[4])
}

func TestRenderPublishesFrame(t *testing.T) {
	w := New(log.NewTestLogger(t), frontend.Config{Title: "test", Scale: 2})

	w.FlipPixel(3, 2)
	w.Render()
	assert.True(t, w.frame[2][3])
}

func TestUpdateUsesPolledKeys(t *testing.T) {
	w := New(log.NewTestLogger(t), frontend.Config{Title: "test", Scale: 2})

	w.keys.Store(1 << 0x5)
	assert.False(t, w.Update())
	assert.True(t, w.KeyDown(0x5))

	w.quit.Store(true)
	assert.True(t, w.Update())
}
