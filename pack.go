package msglite

import "fmt"

// Buffer is a stack-friendly destination for Pack: a fixed MaxFrameLen array
// plus the number of bytes actually written. It exists so callers that
// cannot allocate (the point of this whole package) have somewhere to Pack
// into without reaching for a slice from the heap.
type Buffer struct {
	Len  int
	Data [MaxFrameLen]byte
}

// Bytes returns the packed frame as a slice view over Data.
func (b *Buffer) Bytes() []byte { return b.Data[:b.Len] }

// Pack serializes msg into dst and returns the number of bytes written.
// It fails with ErrInvalidMessage if msg cannot be serialized (too many
// objects, an Untyped object, a broken Bool, or a String with no
// terminating NUL), and with ErrBufferTooSmall if dst is not large enough
// to hold the frame.
func Pack(msg Message, dst []byte) (int, error) {
	size := msg.Size()
	if size == invalidSize {
		return 0, ErrInvalidMessage
	}
	if size > len(dst) {
		return 0, ErrBufferTooSmall
	}

	countByte := countBase + byte(msg.Count)
	dst[6] = countByte
	pos := 7
	for i := 0; i < msg.Count; i++ {
		obj := msg.Objects[i]
		dst[pos] = obj.wireTag()
		pos++
		pos += copy(dst[pos:], obj.payloadBytes())
	}

	crc := CRC32B(0, dst[6:pos])
	header := Fixed[frameHeader]{Payload: frameHeader{
		Magic1: tagHeader,
		Magic2: tagCRC,
		CRC:    crc,
		Count:  countByte,
	}}
	if _, err := header.MarshalTo(dst[:7]); err != nil {
		return 0, err
	}

	return pos, nil
}

// PackBuffer serializes msg into buf, setting buf.Len on success.
func PackBuffer(msg Message, buf *Buffer) error {
	n, err := Pack(msg, buf.Data[:])
	if err != nil {
		return err
	}
	buf.Len = n
	return nil
}

// Unpack parses a complete frame out of src into msg. src must hold exactly
// one frame and nothing else: unlike a length-prefixed format, a msglite
// frame's end is only known once its body has been fully parsed, so any
// byte left over after the last declared object is rejected rather than
// silently ignored (use Unpacker or SlotReader to pull one frame out of a
// larger stream or fixed-size record). It returns ErrMalformedHeader if src
// is shorter than MinFrameLen, longer than MaxFrameLen, or its header bytes
// are wrong,
// ErrChecksumMismatch if the stored CRC32 does not match the CRC32 of
// src[6:], ErrTooManyObjects if the declared object count exceeds
// MaxObjects, ErrUnknownType if a body byte is not a recognized tag,
// ErrTruncatedData if the declared objects run past the end of src, and
// ErrTrailingData if any bytes remain after the last declared object.
func Unpack(src []byte, msg *Message) error {
	if len(src) < MinFrameLen || len(src) > MaxFrameLen {
		return ErrMalformedHeader
	}

	var header Fixed[frameHeader]
	if err := header.UnmarshalBinary(src[:7]); err != nil {
		return ErrMalformedHeader
	}
	if header.Payload.Magic1 != tagHeader || header.Payload.Magic2 != tagCRC {
		return ErrMalformedHeader
	}

	gotCRC := CRC32B(0, src[6:])
	if header.Payload.CRC != gotCRC {
		return fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", ErrChecksumMismatch, header.Payload.CRC, gotCRC)
	}

	out, consumed, err := unpackBody(src[6:])
	if err != nil {
		return err
	}
	if consumed != len(src)-6 {
		return ErrTrailingData
	}

	*msg = out
	return nil
}

// UnpackBuffer parses a complete frame held in buf into msg.
func UnpackBuffer(buf *Buffer, msg *Message) error {
	return Unpack(buf.Bytes(), msg)
}

// unpackBody decodes the count byte and objects starting at body[0] (i.e.
// the frame bytes from the count byte onward, with header and CRC already
// stripped). It returns the decoded Message and the number of bytes it
// consumed, but does not itself require that consumption to reach len(body):
// SlotReader relies on that to find a frame's true length inside a larger,
// zero-padded slot. Unpack enforces full consumption itself since a bare
// byte slice has no padding to excuse a short parse. Shared by Unpack, the
// streaming Unpacker and SlotReader so all three apply exactly the same
// body-parsing rules.
func unpackBody(body []byte) (Message, int, error) {
	if len(body) < 1 {
		return Message{}, 0, ErrTruncatedData
	}

	count := int(body[0]) - countBase
	if count < 0 || count > MaxObjects {
		return Message{}, 0, ErrTooManyObjects
	}

	var out Message
	pos := 1
	for i := 0; i < count; i++ {
		if pos >= len(body) {
			return Message{}, 0, ErrTruncatedData
		}
		tag := body[pos]
		n := payloadSize(tag)
		if n < 0 {
			return Message{}, 0, ErrUnknownType
		}
		pos++
		if pos+n > len(body) {
			return Message{}, 0, ErrTruncatedData
		}
		obj, ok := objectFromWire(tag, body[pos:pos+n])
		if !ok {
			return Message{}, 0, ErrUnknownType
		}
		out.Objects[i] = obj
		pos += n
	}
	out.Count = count
	return out, pos, nil
}
