// Package rom loads program images into system memory.
package rom

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"github.com/hexvm/c8/c8/cpu"
)

// glyphs holds the 16 built-in digit sprites for 0-F, one horizontal
// line of the glyph per byte, five bytes per glyph.
var glyphs = []byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Glyph returns the five sprite rows for the given hexadecimal digit.
func Glyph(digit byte) []byte {
	offset := int(digit&0xf) * cpu.GlyphSize
	return glyphs[offset : offset+cpu.GlyphSize]
}

// Load reads a program image from r and writes it into memory at the
// program offset, along with the built-in glyphs at the glyph offset.
// Both are in place before the first execution step.
func Load(r io.Reader, mem cpu.Memory) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "failed to read program image")
	}

	if len(data) > cpu.MemoryCapacity-cpu.ProgramOffset {
		return errors.Errorf("program size %d exceeds available memory", len(data))
	}

	if err := mem.Write(cpu.GlyphOffset, glyphs); err != nil {
		return err
	}

	return mem.Write(cpu.ProgramOffset, data)
}

// LoadFile loads the program image in the given file.
func LoadFile(file string, mem cpu.Memory) error {
	fd, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "failed to open program image")
	}

	defer fd.Close()
	return Load(fd, mem)
}
