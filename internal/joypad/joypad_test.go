package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadNoSelection(t *testing.T) {
	j := New()
	j.Write(0x30) // both groups deselected

	assert.Equal(t, uint8(0xFF), j.Read())
}

func TestDpadColumn(t *testing.T) {
	j := New()
	j.Write(0x20) // bit 4 low selects the d-pad

	assert.Equal(t, uint8(0xEF), j.Read(), "no keys pressed reads all lines high")

	j.Press(Up)
	assert.Equal(t, uint8(0xEB), j.Read(), "Up pulls line 2 low")

	j.Release(Up)
	assert.Equal(t, uint8(0xEF), j.Read())
}

func TestButtonColumn(t *testing.T) {
	j := New()
	j.Write(0x10) // bit 5 low selects the buttons

	j.Press(A)
	j.Press(Start)
	assert.Equal(t, uint8(0xD6), j.Read(), "A and Start pull lines 0 and 3 low")
}

func TestBothColumnsAND(t *testing.T) {
	j := New()
	j.Write(0x00)

	j.Press(A)     // buttons line 0
	j.Press(Right) // d-pad line 0
	j.Press(Up)    // d-pad line 2

	assert.Equal(t, uint8(0xCA), j.Read(), "both groups AND together")
}

func TestPressInterruptOnlyWhenSelected(t *testing.T) {
	j := New()
	fired := 0
	j.InterruptHandler = func() { fired++ }

	j.Write(0x30) // nothing selected
	j.Press(A)
	assert.Zero(t, fired)

	j.Release(A)
	j.Write(0x10) // buttons selected
	j.Press(A)
	assert.Equal(t, 1, fired)

	// holding the key down produces no further edges
	j.Press(A)
	assert.Equal(t, 1, fired)
}

func TestAnyPressed(t *testing.T) {
	j := New()
	assert.False(t, j.AnyPressed())
	j.Press(Select)
	assert.True(t, j.AnyPressed())
	j.Release(Select)
	assert.False(t, j.AnyPressed())
}
