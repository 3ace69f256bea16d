package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	assert := assert.New(t)

	op := Opcode(0xd12f)

	assert.EqualValues(0xd, op.Class())
	assert.EqualValues(0x1, op.X())
	assert.EqualValues(0x2, op.Y())
	assert.EqualValues(0xf, op.N())
	assert.EqualValues(0x2f, op.NN())
	assert.EqualValues(0x12f, op.NNN())
}

func TestName(t *testing.T) {
	assert := assert.New(t)

	for op, want := range map[Opcode]string{
		0x00e0: "CLS",
		0x00ee: "RET",
		0x1abc: "JP",
		0x2abc: "CALL",
		0x3a01: "SE",
		0x4a01: "SNE",
		0x6a01: "LD",
		0x7a01: "ADD",
		0x8ab0: "LD",
		0x8ab2: "AND",
		0x8ab4: "ADD",
		0x8ab5: "SUB",
		0xaabc: "LDI",
		0xca7f: "RND",
		0xdab5: "DRW",
		0xe0a1: "SKNP",
		0xf007: "LDD",
		0xf015: "STD",
		0xf018: "STS",
		0xf029: "LDF",
		0xf033: "BCD",
		0xf065: "LDR",
	} {
		name, ok := Name(op)
		assert.True(ok, "%04x", uint16(op))
		assert.Equal(want, name, "%04x", uint16(op))
	}

	for _, op := range []Opcode{0x0000, 0x5ab0, 0x8ab1, 0x9ab0, 0xbabc, 0xe09e, 0xf00a} {
		_, ok := Name(op)
		assert.False(ok, "%04x", uint16(op))
	}
}
