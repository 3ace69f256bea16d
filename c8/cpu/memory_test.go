package cpu

import "testing"

func TestMemoryRoundtrip(t *testing.T) {
	m := NewMemory()

	for _, addr := range []int{0, 1, 0x100, 0x200, 0xfff} {
		want := byte(addr ^ 0x5a)

		if err := m.SetU8(addr, want); err != nil {
			t.Fatalf("SetU8(%#04x): %v", addr, err)
		}

		have, err := m.U8(addr)
		if err != nil {
			t.Fatalf("U8(%#04x): %v", addr, err)
		}
		if have != want {
			t.Fatalf("U8(%#04x): want %02x; have %02x", addr, want, have)
		}
	}
}

func TestMemoryU16(t *testing.T) {
	m := NewMemory()
	m[0x200] = 0x12
	m[0x201] = 0x34

	have, err := m.U16(0x200)
	if err != nil {
		t.Fatal(err)
	}
	if have != 0x1234 {
		t.Fatalf("want 1234; have %04x", have)
	}
}

func TestMemoryOutOfRange(t *testing.T) {
	m := NewMemory()

	if _, err := m.U8(MemoryCapacity); err == nil {
		t.Fatal("read beyond capacity must fail")
	}
	if err := m.SetU8(MemoryCapacity, 1); err == nil {
		t.Fatal("write beyond capacity must fail")
	}
	if _, err := m.U8(-1); err == nil {
		t.Fatal("negative address must fail")
	}

	_, err := m.U16(MemoryCapacity - 1)
	e, ok := err.(*AddressError)
	if !ok {
		t.Fatalf("want *AddressError; have %v", err)
	}
	if e.Address != MemoryCapacity {
		t.Fatalf("want faulting address %#04x; have %#04x", MemoryCapacity, e.Address)
	}

	if err := m.Write(MemoryCapacity-1, []byte{1, 2}); err == nil {
		t.Fatal("block write beyond capacity must fail")
	}
}
