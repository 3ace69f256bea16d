package cpu

import "fmt"

// AddressError defines a memory access outside the addressable range.
// It indicates a corrupted program or a machine defect; the run that
// triggered it cannot continue.
type AddressError struct {
	Address int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("memory address %#04x out of range", e.Address)
}

// Error defines a runtime error that halted the machine.
// It carries the instruction that caused the transition.
type Error struct {
	*Instruction
	Msg string
}

// NewError creates a new, formatted error message for the given instruction.
func NewError(instr *Instruction, f string, argv ...interface{}) *Error {
	return &Error{
		Instruction: instr,
		Msg:         fmt.Sprintf(f, argv...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04x: %s", e.PC, e.Msg)
}
