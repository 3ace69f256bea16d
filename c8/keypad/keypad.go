// Package keypad implements the 16-key hexadecimal keypad.
package keypad

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// layout maps physical keys onto the 16 logical keys. It follows the
// common convention of projecting the hexadecimal keypad onto the
// left-hand block of a modern keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var layout = map[glfw.Key]uint{
	glfw.Key1: 0x1,
	glfw.Key2: 0x2,
	glfw.Key3: 0x3,
	glfw.Key4: 0xc,
	glfw.KeyQ: 0x4,
	glfw.KeyW: 0x5,
	glfw.KeyE: 0x6,
	glfw.KeyR: 0xd,
	glfw.KeyA: 0x7,
	glfw.KeyS: 0x8,
	glfw.KeyD: 0x9,
	glfw.KeyF: 0xe,
	glfw.KeyZ: 0xa,
	glfw.KeyX: 0x0,
	glfw.KeyC: 0xb,
	glfw.KeyV: 0xf,
}

// Device polls the host keyboard and latches logical key state.
type Device struct {
	window *glfw.Window
	mask   uint16
}

// New creates a keypad reading from the given window.
func New(window *glfw.Window) *Device {
	return &Device{window: window}
}

// Update takes a fresh snapshot of the key state.
// Call once per host iteration.
func (d *Device) Update() {
	var mask uint16
	for key, bit := range layout {
		if d.window.GetKey(key) == glfw.Press {
			mask |= 1 << bit
		}
	}
	d.mask = mask
}

// Mask returns the latched key state, one bit per logical key 0x0-0xF.
func (d *Device) Mask() uint16 {
	return d.mask
}
