package msglite

import "io"

// Message implements Codec, so it can be used anywhere the Writer/Reader
// and generic helpers already operate on a Codec — batched into a
// MessageBatch, embedded in a Fixed-style container, or written to any
// io.Writer a caller already has.
var _ Codec = (*Message)(nil)

// MarshalBinary encodes m into a freshly allocated slice sized exactly to
// the packed frame. It fails with ErrInvalidMessage if m cannot be packed.
func (m *Message) MarshalBinary() ([]byte, error) {
	size := m.Size()
	if size == invalidSize {
		return nil, ErrInvalidMessage
	}
	data := make([]byte, size)
	if _, err := Pack(*m, data); err != nil {
		return nil, err
	}
	return data, nil
}

// MarshalTo encodes m into p without allocating, the same way Pack does.
func (m *Message) MarshalTo(p []byte) (int, error) {
	return Pack(*m, p)
}

// WriteTo encodes m and writes it to w.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	return WriteToGeneric[*Message](m, w)
}

// UnmarshalBinary decodes a complete frame from data into m.
func (m *Message) UnmarshalBinary(data []byte) error {
	return Unpack(data, m)
}

// ReadFrom reads all of r and decodes a single frame from it into m. Like
// ReadFromGeneric, this buffers the whole stream first: it is meant for
// short-lived connections and test fixtures, not framing over a long-lived
// byte stream, where StreamScanner's byte-at-a-time resync is the correct
// tool.
func (m *Message) ReadFrom(r io.Reader) (int64, error) {
	return ReadFromGeneric[*Message](m, r)
}
