package main

import (
	"io"
	"time"

	"github.com/hexvm/c8/c8/cpu"
)

// CPUController controls the execution of a CPU.
type CPUController struct {
	cpu        *cpu.CPU
	start      time.Time
	cycleCount uint64
	running    bool
}

// NewCPUController creates a new CPU controller.
func NewCPUController(display cpu.Display, trace cpu.TraceFunc) *CPUController {
	return &CPUController{
		cpu: cpu.New(display, trace),
	}
}

// Running returns true if the CPU is currently running.
func (c *CPUController) Running() bool {
	return c.running
}

// Frequency returns the current clock frequency in herz.
func (c *CPUController) Frequency() float64 {
	if c.running {
		return float64(c.cycleCount) / time.Since(c.start).Seconds()
	}
	return 0
}

// ToggleRun starts or stops program execution.
func (c *CPUController) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins execution of the program.
func (c *CPUController) Start() {
	c.setRunning(true)
}

// Stop pauses execution of the program.
func (c *CPUController) Stop() {
	c.setRunning(false)
}

// Step performs a single execution step.
// When the machine halts, execution stops and the final state remains
// available for inspection through Memory.
func (c *CPUController) Step() error {
	c.cycleCount++

	err := c.cpu.Step()
	if err != nil {
		c.setRunning(false)
		if err != io.EOF {
			return err
		}
	}

	return nil
}

// Tick advances the delay and sound timers by one tick.
func (c *CPUController) Tick() {
	c.cpu.Tick()
}

// SetKeys latches the given key state mask into the CPU.
func (c *CPUController) SetKeys(mask uint16) {
	c.cpu.SetKeys(mask)
}

// Memory returns the cpu's internal memory bank.
func (c *CPUController) Memory() cpu.Memory {
	return c.cpu.Memory()
}

// Reset restores the CPU to its power-on state.
func (c *CPUController) Reset() {
	c.cpu.Reset()
}

// setRunning determines if the CPU is running or is paused.
func (c *CPUController) setRunning(v bool) {
	c.running = v
	c.start = time.Now()
	c.cycleCount = 0
}
