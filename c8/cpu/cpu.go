// Package cpu implements the CHIP-8 CPU.
package cpu

import (
	"io"
	"math/rand"
	"time"
)

// Memory layout and machine limits.
const (
	ProgramOffset = 0x200 // Programs are loaded and started here.
	GlyphOffset   = 0x100 // The built-in digit glyphs are loaded here.
	GlyphSize     = 5     // Size of one built-in glyph in bytes.
	RegisterCount = 16    // Number of general purpose registers.
	StackCapacity = 255   // Maximum call depth.
)

// VF indexes the register doubling as the flag output for
// arithmetic and draw instructions.
const VF = 0xf

// TraceFunc represents a callback handler for debug trace output.
type TraceFunc func(*Instruction)

// Display receives sprite rows composed by the draw instruction.
type Display interface {
	// Clear unsets all pixels.
	Clear()

	// DrawRow XORs an 8-pixel sprite row into row y, shifted left by x.
	// Returns true if any pixel was flipped from set to unset.
	DrawRow(bits byte, x, y int) bool
}

// CPU implements the runtime.
//
// It is single threaded; the host drives execution by calling Step,
// Tick and SetKeys at rates of its own choosing.
type CPU struct {
	trace   TraceFunc
	memory  Memory
	display Display
	rng     *rand.Rand
	instr   Instruction

	pc     uint16
	v      [RegisterCount]byte
	i      uint16
	stack  [StackCapacity]uint16
	sp     int
	delay  byte
	sound  byte
	keys   uint16
	halted bool
}

// New creates a new CPU composing onto the given display.
// Optionally with the given debug trace handler.
func New(display Display, trace TraceFunc) *CPU {
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	c := &CPU{
		trace:   trace,
		display: display,
		memory:  NewMemory(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	c.Reset()
	return c
}

// Memory returns the cpu's internal memory bank.
func (c *CPU) Memory() Memory {
	return c.memory
}

// Halted returns true once the machine has entered the halted state.
// A halted machine executes no further steps until Reset is called.
func (c *CPU) Halted() bool {
	return c.halted
}

// Sound returns the current sound timer value. The host is expected
// to emit a tone while it is non-zero.
func (c *CPU) Sound() byte {
	return c.sound
}

// SetKeys overwrites the key latch wholesale with the given mask,
// one bit per logical key 0x0-0xF. The host calls it once per iteration.
func (c *CPU) SetKeys(mask uint16) {
	c.keys = mask
}

// Tick decrements the delay and sound timers by one each, clamped at
// zero. The host invokes it at its own logical rate, nominally 60Hz,
// independent of the instruction rate.
func (c *CPU) Tick() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}

// Seed reseeds the random number generator used by the RND instruction.
func (c *CPU) Seed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Reset restores the machine to its power-on state: the program
// counter at the program offset, registers, stack and timers zeroed,
// the halt flag cleared and the display blanked. Memory contents are
// left alone; reloading them is the loader's job.
func (c *CPU) Reset() {
	c.pc = ProgramOffset
	for i := range c.v {
		c.v[i] = 0
	}
	c.i = 0
	for i := range c.stack {
		c.stack[i] = 0
	}
	c.sp = 0
	c.delay = 0
	c.sound = 0
	c.keys = 0
	c.halted = false

	if c.display != nil {
		c.display.Clear()
	}
}

// Step performs a single execution step: fetch the instruction at the
// program counter, execute it and advance the counter by one
// instruction width unless the instruction redirected it.
//
// Returns io.EOF if the machine is halted. A stack overflow, stack
// underrun or unknown instruction transitions the machine to the
// halted state and returns an *Error describing the cause; a memory
// access outside the addressable range halts it with an
// *AddressError. The machine state remains inspectable either way.
func (c *CPU) Step() error {
	if c.halted {
		return io.EOF
	}

	instr := &c.instr
	if err := instr.Decode(c.memory, c.pc); err != nil {
		c.halted = true
		return err
	}

	c.trace(instr)

	op := instr.Op
	x, y := op.X(), op.Y()

	switch op.Class() {
	case 0x0:
		switch op.NN() {
		case 0xe0:
			c.display.Clear()
		case 0xee:
			if c.sp == 0 {
				c.halted = true
				return NewError(instr, "return with empty stack")
			}
			c.sp--
			c.pc = c.stack[c.sp] + 2
			return nil
		default:
			c.halted = true
			return NewError(instr, "unknown instruction %04x", uint16(op))
		}

	case 0x1:
		c.pc = op.NNN()
		return nil

	case 0x2:
		if c.sp == StackCapacity {
			c.halted = true
			return NewError(instr, "stack overflow")
		}
		c.stack[c.sp] = c.pc
		c.sp++
		c.pc = op.NNN()
		return nil

	case 0x3:
		if c.v[x] == op.NN() {
			c.pc += 2
		}

	case 0x4:
		if c.v[x] != op.NN() {
			c.pc += 2
		}

	case 0x6:
		c.v[x] = op.NN()

	case 0x7:
		// Wraps silently; unlike the register-register add this
		// variant never touches the flag register.
		c.v[x] += op.NN()

	case 0x8:
		switch op.N() {
		case 0x0:
			c.v[x] = c.v[y]
		case 0x2:
			c.v[x] &= c.v[y]
		case 0x4:
			sum := uint16(c.v[x]) + uint16(c.v[y])
			c.v[VF] = byte(sum >> 8)
			c.v[x] = byte(sum)
		case 0x5:
			diff := c.v[x] - c.v[y]
			if c.v[y] > c.v[x] {
				c.v[VF] = 1
			} else {
				c.v[VF] = 0
			}
			c.v[x] = diff
		default:
			c.halted = true
			return NewError(instr, "unknown instruction %04x", uint16(op))
		}

	case 0xa:
		c.i = op.NNN()

	case 0xc:
		c.v[x] = byte(c.rng.Intn(0x100)) & op.NN()

	case 0xd:
		unset := false
		vx, vy := int(c.v[x]), int(c.v[y])
		for row := 0; row < int(op.N()); row++ {
			bits, err := c.memory.U8(int(c.i) + row)
			if err != nil {
				c.halted = true
				return err
			}
			if c.display.DrawRow(bits, vx, vy+row) {
				unset = true
			}
		}
		if unset {
			c.v[VF] = 1
		} else {
			c.v[VF] = 0
		}

	case 0xe:
		if op.NN() != 0xa1 {
			c.halted = true
			return NewError(instr, "unknown instruction %04x", uint16(op))
		}
		if c.keys&(1<<uint(c.v[x]&0xf)) == 0 {
			c.pc += 2
		}

	case 0xf:
		switch op.NN() {
		case 0x07:
			c.v[x] = c.delay
		case 0x15:
			c.delay = c.v[x]
		case 0x18:
			c.sound = c.v[x]
		case 0x29:
			c.i = GlyphOffset + uint16(c.v[x])*GlyphSize
		case 0x33:
			value := c.v[x]
			digits := [3]byte{value / 100 % 10, value / 10 % 10, value % 10}
			for j, d := range digits {
				if err := c.memory.SetU8(int(c.i)+j, d); err != nil {
					c.halted = true
					return err
				}
			}
		case 0x65:
			for j := 0; j <= int(x); j++ {
				b, err := c.memory.U8(int(c.i) + j)
				if err != nil {
					c.halted = true
					return err
				}
				c.v[j] = b
			}
		default:
			c.halted = true
			return NewError(instr, "unknown instruction %04x", uint16(op))
		}

	default:
		c.halted = true
		return NewError(instr, "unknown instruction %04x", uint16(op))
	}

	c.pc += 2
	return nil
}
