package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClear(t *testing.T) {
	assert := assert.New(t)

	fb := NewFramebuffer()
	fb.DrawRow(0xff, 10, 5)
	fb.Clear()

	for y := 0; y < Height; y++ {
		assert.Zero(fb.Row(y), "row %d", y)
	}
}

func TestDrawRowMirrors(t *testing.T) {
	assert := assert.New(t)

	// The most significant sprite bit is the leftmost pixel.
	fb := NewFramebuffer()
	fb.DrawRow(0x80, 0, 0)

	assert.Equal(uint64(0x01), fb.Row(0))
	assert.True(fb.Pixel(0, 0))

	fb.Clear()
	fb.DrawRow(0x01, 0, 0)

	assert.Equal(uint64(0x80), fb.Row(0))
	assert.True(fb.Pixel(7, 0))
}

func TestDrawRowCollision(t *testing.T) {
	assert := assert.New(t)

	fb := NewFramebuffer()

	assert.False(fb.DrawRow(0x80, 0, 0), "first draw")
	assert.Equal(uint64(0x01), fb.Row(0))

	assert.True(fb.DrawRow(0x80, 0, 0), "second draw")
	assert.Zero(fb.Row(0))
}

func TestDrawRowPartialOverlap(t *testing.T) {
	assert := assert.New(t)

	fb := NewFramebuffer()
	fb.DrawRow(0xf0, 0, 0)

	// Overlaps the upper nibble only; the flipped pixels still count.
	assert.True(fb.DrawRow(0xff, 0, 0))
	assert.Equal(uint64(0xf0), fb.Row(0))
}

func TestDrawRowShift(t *testing.T) {
	assert := assert.New(t)

	fb := NewFramebuffer()
	fb.DrawRow(0x80, 20, 3)

	assert.True(fb.Pixel(20, 3))
	assert.Zero(fb.Row(0))
}

func TestDrawRowRightClip(t *testing.T) {
	assert := assert.New(t)

	// Bits shifted past column 63 are discarded, not wrapped.
	fb := NewFramebuffer()
	fb.DrawRow(0xff, 60, 0)

	assert.Equal(uint64(0xf)<<60, fb.Row(0))
}

func TestDrawRowBottomClip(t *testing.T) {
	assert := assert.New(t)

	fb := NewFramebuffer()

	assert.False(fb.DrawRow(0xff, 0, Height))
	assert.False(fb.DrawRow(0xff, 0, -1))

	for y := 0; y < Height; y++ {
		assert.Zero(fb.Row(y), "row %d", y)
	}
}

func TestBlit(t *testing.T) {
	assert := assert.New(t)

	fb := NewFramebuffer()
	fb.DrawRow(0x80, 0, 0)
	fb.DrawRow(0x80, 63-7, Height-1)

	d := NewDevice(fb)
	d.blit()

	assert.EqualValues(0xff, d.pixels[0])
	assert.EqualValues(0, d.pixels[1])
	assert.EqualValues(0xff, d.pixels[(Height-1)*Width+63-7])
}
