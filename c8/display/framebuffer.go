// Package display implements the 64x32 monochrome display.
package display

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Framebuffer holds the display contents as one 64-bit field per row,
// least significant bit leftmost. Each pixel is either set or unset.
type Framebuffer struct {
	rows [Height]uint64
}

// NewFramebuffer creates a blank framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Clear unsets all pixels.
func (fb *Framebuffer) Clear() {
	for y := range fb.rows {
		fb.rows[y] = 0
	}
}

// DrawRow XORs an 8-pixel sprite row into row y, shifted left by x.
// Sprite bytes carry their leftmost pixel in the most significant bit,
// which is mirrored relative to the row composition order, so the bits
// are reversed before composition. Returns true if any pixel was
// flipped from set to unset.
//
// Rows below the bottom edge and bits shifted past the right edge are
// clipped, not wrapped.
func (fb *Framebuffer) DrawRow(bits byte, x, y int) bool {
	if y < 0 || y >= Height {
		return false
	}

	bits = mirror(bits)

	before := fb.rows[y]
	fb.rows[y] ^= uint64(bits) << uint(x)
	after := fb.rows[y]

	return before&^after != 0
}

// Row returns the pixel bits for row y.
func (fb *Framebuffer) Row(y int) uint64 {
	return fb.rows[y]
}

// Pixel returns true if the pixel at the given coordinates is set.
func (fb *Framebuffer) Pixel(x, y int) bool {
	return fb.rows[y]>>uint(x)&1 == 1
}

// mirror reverses the bit order of v.
func mirror(v byte) byte {
	v = v&0xf0>>4 | v&0x0f<<4
	v = v&0xcc>>2 | v&0x33<<2
	v = v&0xaa>>1 | v&0x55<<1
	return v
}
