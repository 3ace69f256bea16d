package rom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexvm/c8/c8/cpu"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	mem := cpu.NewMemory()
	image := []byte{0x60, 0x01, 0xa3, 0x00}

	assert.NoError(Load(bytes.NewReader(image), mem))

	// Program bytes land at the program offset.
	assert.Equal(image, []byte(mem[cpu.ProgramOffset:cpu.ProgramOffset+4]))

	// Glyphs land at the glyph offset; glyph 0 starts with 0xf0.
	assert.EqualValues(0xf0, mem[cpu.GlyphOffset])
	assert.Equal(Glyph(0), []byte(mem[cpu.GlyphOffset:cpu.GlyphOffset+cpu.GlyphSize]))
	assert.Equal(Glyph(0xf), []byte(mem[cpu.GlyphOffset+0xf*cpu.GlyphSize:cpu.GlyphOffset+0x10*cpu.GlyphSize]))
}

func TestLoadTooLarge(t *testing.T) {
	assert := assert.New(t)

	mem := cpu.NewMemory()
	image := make([]byte, cpu.MemoryCapacity-cpu.ProgramOffset+1)

	assert.Error(Load(bytes.NewReader(image), mem))
}

func TestLoadMaxSize(t *testing.T) {
	assert := assert.New(t)

	mem := cpu.NewMemory()
	image := make([]byte, cpu.MemoryCapacity-cpu.ProgramOffset)

	assert.NoError(Load(bytes.NewReader(image), mem))
}

func TestGlyphs(t *testing.T) {
	assert := assert.New(t)

	for digit := byte(0); digit < 0x10; digit++ {
		g := Glyph(digit)
		assert.Len(g, cpu.GlyphSize, "glyph %x", digit)

		// Every glyph has at least one pixel per row in its top line.
		assert.NotZero(g[0], "glyph %x", digit)
	}
}
