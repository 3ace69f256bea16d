// Package arch defines the system's instruction word layout along with
// some related helper functions.
package arch

// Opcode represents one fetched 16-bit instruction word.
//
// The top nibble selects the operation class. Depending on the class,
// the remaining bits encode register indices, an immediate byte or a
// 12-bit address.
type Opcode uint16

// Class returns the top nibble, which selects the operation class.
func (op Opcode) Class() byte {
	return byte(op>>12) & 0xf
}

// X returns the register index encoded in the second nibble.
func (op Opcode) X() byte {
	return byte(op>>8) & 0xf
}

// Y returns the register index encoded in the third nibble.
func (op Opcode) Y() byte {
	return byte(op>>4) & 0xf
}

// N returns the low nibble. The draw instruction stores the sprite
// height here. For class 0x8 it selects the arithmetic operation.
func (op Opcode) N() byte {
	return byte(op) & 0xf
}

// NN returns the low byte, used as an 8-bit immediate or as the
// operation selector for classes 0x0, 0xe and 0xf.
func (op Opcode) NN() byte {
	return byte(op)
}

// NNN returns the low 12 bits, used as an address operand.
func (op Opcode) NNN() uint16 {
	return uint16(op) & 0xfff
}

// Name returns the mnemonic for the given instruction word.
// Returns false if the word does not encode a known instruction.
func Name(op Opcode) (string, bool) {
	switch op.Class() {
	case 0x0:
		switch op.NN() {
		case 0xe0:
			return "CLS", true
		case 0xee:
			return "RET", true
		}
	case 0x1:
		return "JP", true
	case 0x2:
		return "CALL", true
	case 0x3:
		return "SE", true
	case 0x4:
		return "SNE", true
	case 0x6:
		return "LD", true
	case 0x7:
		return "ADD", true
	case 0x8:
		switch op.N() {
		case 0x0:
			return "LD", true
		case 0x2:
			return "AND", true
		case 0x4:
			return "ADD", true
		case 0x5:
			return "SUB", true
		}
	case 0xa:
		return "LDI", true
	case 0xc:
		return "RND", true
	case 0xd:
		return "DRW", true
	case 0xe:
		if op.NN() == 0xa1 {
			return "SKNP", true
		}
	case 0xf:
		switch op.NN() {
		case 0x07:
			return "LDD", true
		case 0x15:
			return "STD", true
		case 0x18:
			return "STS", true
		case 0x29:
			return "LDF", true
		case 0x33:
			return "BCD", true
		case 0x65:
			return "LDR", true
		}
	}
	return "", false
}
