package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	assert := assert.New(t)

	assert.Len(layout, 16)

	// Every logical key 0x0-0xF is reachable from exactly one physical key.
	var seen uint16
	for key, bit := range layout {
		assert.Less(int(bit), 16, "key %v", key)
		assert.Zero(seen&(1<<bit), "logical key %x mapped twice", bit)
		seen |= 1 << bit
	}

	assert.EqualValues(0xffff, seen)
}
