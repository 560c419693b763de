package savestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	w := NewWriter()
	w.U8(0x12)
	w.Bool(true)
	w.U16(0xBEEF)
	w.U32(0xDEADBEEF)
	w.U64(0x0123456789ABCDEF)
	w.Int(-42)
	w.Bytes([]byte{1, 2, 3})
	w.Blob([]byte{9, 8})

	r := NewReader(w.Data())
	assert.Equal(t, uint8(0x12), r.U8())
	assert.True(t, r.Bool())
	assert.Equal(t, uint16(0xBEEF), r.U16())
	assert.Equal(t, uint32(0xDEADBEEF), r.U32())
	assert.Equal(t, uint64(0x0123456789ABCDEF), r.U64())
	assert.Equal(t, -42, r.Int())
	fixed := make([]byte, 3)
	r.Bytes(fixed)
	assert.Equal(t, []byte{1, 2, 3}, fixed)
	assert.Equal(t, []byte{9, 8}, r.Blob())
	require.NoError(t, r.Err())
	assert.Zero(t, r.Remaining())
}

func TestReaderTruncation(t *testing.T) {
	r := NewReader([]byte{0x01})
	r.U16()
	assert.Error(t, r.Err())

	// reads after an error return zero values and keep the error
	assert.Zero(t, r.U32())
	assert.Error(t, r.Err())
}

func TestBlobTruncation(t *testing.T) {
	w := NewWriter()
	w.Blob(make([]byte, 100))
	data := w.Data()[:50]

	r := NewReader(data)
	assert.Nil(t, r.Blob())
	assert.Error(t, r.Err())
}
