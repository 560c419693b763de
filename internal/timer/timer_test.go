package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjamison/gogb/internal/addr"
)

func TestDIVIncrementsEvery256Cycles(t *testing.T) {
	tm := New()

	tm.Tick(255)
	assert.Equal(t, uint8(0), tm.Read(addr.DIV))
	tm.Tick(1)
	assert.Equal(t, uint8(1), tm.Read(addr.DIV))
	tm.Tick(256)
	assert.Equal(t, uint8(2), tm.Read(addr.DIV))
}

func TestTIMADisabledWithoutTACEnable(t *testing.T) {
	tm := New()
	tm.Write(addr.TAC, 0x01) // rate set but enable bit clear

	tm.Tick(1024)
	assert.Equal(t, uint8(0), tm.Read(addr.TIMA))
}

func TestTIMARates(t *testing.T) {
	tests := []struct {
		name   string
		tac    uint8
		cycles int
		want   uint8
	}{
		{"4096 Hz", 0x04, 1024 * 4, 4},
		{"262144 Hz", 0x05, 16 * 4, 4},
		{"65536 Hz", 0x06, 64 * 4, 4},
		{"16384 Hz", 0x07, 256 * 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New()
			tm.Write(addr.TAC, tt.tac)
			tm.Tick(tt.cycles)
			assert.Equal(t, tt.want, tm.Read(addr.TIMA))
		})
	}
}

func TestOverflowReloadsTMAAfterDelay(t *testing.T) {
	tm := New()
	fired := 0
	tm.InterruptHandler = func() { fired++ }

	tm.Write(addr.TAC, 0x05)
	tm.Write(addr.TMA, 0xAB)
	tm.Write(addr.TIMA, 0xFF)

	tm.Tick(16)
	assert.Equal(t, uint8(0x00), tm.Read(addr.TIMA), "TIMA reads zero during the reload delay")
	require.Zero(t, fired)

	tm.Tick(4)
	assert.Equal(t, uint8(0xAB), tm.Read(addr.TIMA))
	require.Zero(t, fired, "the interrupt lands one tick after the reload")

	tm.Tick(4)
	assert.Equal(t, 1, fired)
}

func TestDIVWriteResetsCounter(t *testing.T) {
	tm := New()
	tm.Tick(300)
	require.Equal(t, uint8(1), tm.Read(addr.DIV))

	tm.Write(addr.DIV, 0x55) // value is ignored, counter resets
	assert.Equal(t, uint8(0), tm.Read(addr.DIV))
}

func TestDIVResetQuirk(t *testing.T) {
	tm := New()
	tm.Write(addr.TAC, 0x05) // bit 3 of the divider feeds TIMA

	tm.Tick(8) // counter = 8: the selected bit is high
	require.Equal(t, uint8(0), tm.Read(addr.TIMA))

	// resetting DIV drops the selected bit from 1 to 0, which the
	// falling-edge detector counts as a TIMA increment
	tm.Write(addr.DIV, 0x00)
	assert.Equal(t, uint8(1), tm.Read(addr.TIMA))
}

func TestDIVResetNoQuirkWhenBitLow(t *testing.T) {
	tm := New()
	tm.Write(addr.TAC, 0x05)

	tm.Tick(4) // counter = 4: the selected bit is still low
	tm.Write(addr.DIV, 0x00)
	assert.Equal(t, uint8(0), tm.Read(addr.TIMA))
}

func TestSetSeed(t *testing.T) {
	tm := New()
	tm.SetSeed(0xABCC)
	assert.Equal(t, uint8(0xAB), tm.Read(addr.DIV))
}
