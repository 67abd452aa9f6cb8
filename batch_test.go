package msglite

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBatchRoundTrip(t *testing.T) {
	msgs := []*Message{
		Ptr(NewMessage(uint8(1))),
		Ptr(NewMessage("two", uint16(2))),
		Ptr(NewMessage()),
	}
	batch := NewMessageBatch(msgs)

	var buf bytes.Buffer
	n, err := batch.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	got := NewMessageBatch(make([]*Message, 0, len(msgs)))
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)

	require.Len(t, got.Messages(), len(msgs))
	for i, m := range msgs {
		other := got.Messages()[i]
		require.Equal(t, m.Count, other.Count)
		for j := 0; j < m.Count; j++ {
			assert.True(t, Equal(m.Objects[j], other.Objects[j]))
		}
	}
}

func TestMessageBatchEmpty(t *testing.T) {
	batch := NewMessageBatch(nil)
	assert.Equal(t, 0, batch.Len())
	assert.Equal(t, 0, batch.Size())
}
