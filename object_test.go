package msglite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectRoundTrip(t *testing.T) {
	cases := []any{
		true, false,
		uint8(0xAB), uint16(0xABCD), uint32(0xDEADBEEF), uint64(0x0102030405060708),
		int8(-12), int16(-1234), int32(-123456789), int64(-1234567890123),
		float32(3.5), float64(-2.25),
		"hi", "",
	}
	for _, v := range cases {
		obj, ok := NewObject(v)
		require.True(t, ok, "%v", v)
		assert.NotEqual(t, invalidSize, obj.Size())
	}
}

func TestNewObjectRejectsUnknownType(t *testing.T) {
	_, ok := NewObject(struct{}{})
	assert.False(t, ok)
}

func TestObjectGettersMatchKind(t *testing.T) {
	obj := NewUint16(0xBEEF)
	v, ok := obj.Uint16()
	require.True(t, ok)
	assert.Equal(t, uint16(0xBEEF), v)

	_, ok = obj.Uint32()
	assert.False(t, ok, "getter for the wrong kind must fail")
}

func TestStringTruncation(t *testing.T) {
	obj := NewString("this string is far longer than fifteen bytes")
	s, ok := obj.String()
	require.True(t, ok)
	assert.Equal(t, 15, len(s))
	assert.Equal(t, 1+15, obj.Size())
}

func TestBoolSizeRejectsBrokenPayload(t *testing.T) {
	obj := NewBool(true)
	obj.raw[0] = 7 // simulate a corrupted union read
	assert.Equal(t, invalidSize, obj.Size())
	_, ok := obj.Bool()
	assert.False(t, ok)
}

func TestUntypedObjectIsInvalid(t *testing.T) {
	var obj Object
	assert.Equal(t, invalidSize, obj.Size())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(NewUint32(7), NewUint32(7)))
	assert.False(t, Equal(NewUint32(7), NewUint32(8)))
	assert.False(t, Equal(NewUint32(7), NewInt32(7)))
	assert.False(t, Equal(NewString("a"), NewString("b")))

	// NaN compares equal to itself bit-for-bit, since Equal compares payload
	// bytes rather than using Go's float equality.
	nan := NewDouble(nan64())
	assert.True(t, Equal(nan, nan))
}

func nan64() float64 {
	var f float64
	return f / f
}

func TestCRC32BKnownAnswer(t *testing.T) {
	assert.Equal(t, uint32(0xCBF43926), CRC32B(0, []byte("123456789")))
}

func TestCRC32BIncrementalMatchesBatch(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	batch := CRC32B(0, data)

	seed := uint32(0)
	for _, b := range data {
		seed = CRC32B(seed, []byte{b})
	}

	assert.Equal(t, batch, seed)
}
