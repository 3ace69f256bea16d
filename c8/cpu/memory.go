package cpu

// MemoryCapacity defines the total amount of addressable memory in bytes.
const MemoryCapacity = 0x1000

// Memory defines the system's memory bank.
//
// Every accessor is bounds checked. An access outside the addressable
// range yields an *AddressError; there is no recovery path for it.
type Memory []byte

// NewMemory creates a zeroed memory bank.
func NewMemory() Memory {
	return make(Memory, MemoryCapacity)
}

// U8 returns the 8-bit value at the given address.
func (m Memory) U8(addr int) (byte, error) {
	if addr < 0 || addr >= len(m) {
		return 0, &AddressError{Address: addr}
	}
	return m[addr], nil
}

// SetU8 sets the 8-bit value at the given address.
func (m Memory) SetU8(addr int, value byte) error {
	if addr < 0 || addr >= len(m) {
		return &AddressError{Address: addr}
	}
	m[addr] = value
	return nil
}

// U16 returns the 16-bit value spanning addr and addr+1,
// most significant byte first.
func (m Memory) U16(addr int) (uint16, error) {
	hi, err := m.U8(addr)
	if err != nil {
		return 0, err
	}
	lo, err := m.U8(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Write writes len(p) bytes from p into memory, starting at the given address.
func (m Memory) Write(addr int, p []byte) error {
	if addr < 0 || addr+len(p) > len(m) {
		return &AddressError{Address: addr + len(p) - 1}
	}
	copy(m[addr:], p)
	return nil
}
