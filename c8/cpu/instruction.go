package cpu

import (
	"github.com/hexvm/c8/arch"
)

// Instruction defines decoded instruction data.
type Instruction struct {
	PC uint16      // Address the instruction was fetched from.
	Op arch.Opcode // Raw 16-bit instruction word.
}

// Decode fetches the instruction word at the given address.
func (i *Instruction) Decode(m Memory, pc uint16) error {
	word, err := m.U16(int(pc))
	if err != nil {
		return err
	}
	i.PC = pc
	i.Op = arch.Opcode(word)
	return nil
}
