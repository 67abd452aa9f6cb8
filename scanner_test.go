package msglite

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packedFrame(t *testing.T, msg Message) []byte {
	t.Helper()
	var buf [MaxFrameLen]byte
	n, err := Pack(msg, buf[:])
	require.NoError(t, err)
	return append([]byte{}, buf[:n]...)
}

func TestStreamScannerSkipsGarbageBetweenFrames(t *testing.T) {
	frame1 := packedFrame(t, NewMessage(uint8(1)))
	frame2 := packedFrame(t, NewMessage(uint8(2)))

	var stream bytes.Buffer
	stream.Write([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	stream.Write(frame1)
	stream.Write([]byte{0x00, 0x92, 0x01, 0x02})
	stream.Write(frame2)

	s := NewStreamScanner(&stream)

	m1, err := s.Next()
	require.NoError(t, err)
	v1, ok := m1.Objects[0].Uint8()
	require.True(t, ok)
	assert.Equal(t, uint8(1), v1)

	m2, err := s.Next()
	require.NoError(t, err)
	v2, ok := m2.Objects[0].Uint8()
	require.True(t, ok)
	assert.Equal(t, uint8(2), v2)

	_, err = s.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamScannerEmptyInputReturnsEOF(t *testing.T) {
	s := NewStreamScanner(bytes.NewReader(nil))
	_, err := s.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamScannerResyncsAfterCorruptedFrame(t *testing.T) {
	frame1 := packedFrame(t, NewMessage(uint8(7)))
	frame1[len(frame1)-1] ^= 0xFF // corrupt the CRC coverage
	frame2 := packedFrame(t, NewMessage(uint8(8)))

	var stream bytes.Buffer
	stream.Write(frame1)
	stream.Write(frame2)

	s := NewStreamScanner(&stream)
	m, err := s.Next()
	require.NoError(t, err)
	v, ok := m.Objects[0].Uint8()
	require.True(t, ok)
	assert.Equal(t, uint8(8), v)
}
