package msglite

import (
	"encoding/binary"
	"math"
)

// Kind identifies which of the 13 primitive wire types an Object holds.
type Kind uint8

const (
	// KindUntyped is the zero value of Kind. It is never valid on the wire;
	// Pack rejects any Object still carrying it.
	KindUntyped Kind = iota
	KindBool
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat
	KindDouble
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindUint8:
		return "Uint8"
	case KindUint16:
		return "Uint16"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	default:
		return "Untyped"
	}
}

// invalidSize is the sentinel Size() returns for an Untyped, broken, or
// otherwise unserializable Object or Message.
const invalidSize = -1

// Object is a single tagged primitive value.
//
// raw holds the value's on-wire payload bytes (big-endian, left-justified),
// zero-padded out to 16 bytes. This mirrors the storage-overlap of the C
// union this type was distilled from closely enough that the broken-Bool
// check below reads the same underlying byte regardless of which
// constructor built the Object, without needing any per-kind branching to
// find it: raw[0] is always where a Bool's byte lives, whichever way the
// Object was actually built.
type Object struct {
	kind Kind
	raw  [16]byte
}

// NewBool constructs a Bool Object.
func NewBool(v bool) Object {
	var o Object
	o.kind = KindBool
	if v {
		o.raw[0] = 1
	}
	return o
}

// NewUint8 constructs a Uint8 Object.
func NewUint8(v uint8) Object {
	var o Object
	o.kind = KindUint8
	o.raw[0] = v
	return o
}

// NewUint16 constructs a Uint16 Object.
func NewUint16(v uint16) Object {
	var o Object
	o.kind = KindUint16
	binary.BigEndian.PutUint16(o.raw[:2], v)
	return o
}

// NewUint32 constructs a Uint32 Object.
func NewUint32(v uint32) Object {
	var o Object
	o.kind = KindUint32
	binary.BigEndian.PutUint32(o.raw[:4], v)
	return o
}

// NewUint64 constructs a Uint64 Object.
func NewUint64(v uint64) Object {
	var o Object
	o.kind = KindUint64
	binary.BigEndian.PutUint64(o.raw[:8], v)
	return o
}

// NewInt8 constructs an Int8 Object.
func NewInt8(v int8) Object {
	var o Object
	o.kind = KindInt8
	o.raw[0] = uint8(v)
	return o
}

// NewInt16 constructs an Int16 Object.
func NewInt16(v int16) Object {
	var o Object
	o.kind = KindInt16
	binary.BigEndian.PutUint16(o.raw[:2], uint16(v))
	return o
}

// NewInt32 constructs an Int32 Object.
func NewInt32(v int32) Object {
	var o Object
	o.kind = KindInt32
	binary.BigEndian.PutUint32(o.raw[:4], uint32(v))
	return o
}

// NewInt64 constructs an Int64 Object.
func NewInt64(v int64) Object {
	var o Object
	o.kind = KindInt64
	binary.BigEndian.PutUint64(o.raw[:8], uint64(v))
	return o
}

// NewFloat constructs a 32-bit Float Object.
func NewFloat(v float32) Object {
	var o Object
	o.kind = KindFloat
	binary.BigEndian.PutUint32(o.raw[:4], math.Float32bits(v))
	return o
}

// NewDouble constructs a 64-bit Double Object.
func NewDouble(v float64) Object {
	var o Object
	o.kind = KindDouble
	binary.BigEndian.PutUint64(o.raw[:8], math.Float64bits(v))
	return o
}

// NewString constructs a String Object, copying at most MaxStringLen bytes
// of s. Bytes beyond that are silently dropped, matching the original
// strncpy-and-truncate constructor; use Size() after construction if the
// caller must detect truncation.
func NewString(s string) Object {
	var o Object
	o.kind = KindString
	n := len(s)
	if n > MaxStringLen {
		n = MaxStringLen
	}
	copy(o.raw[:15], s[:n])
	return o
}

// NewObject builds an Object from a dynamically typed value, for use by the
// variadic Message constructor and by Message.Parse's filter specs. It
// returns ok=false for any type outside the 13 primitive kinds.
func NewObject(v any) (Object, bool) {
	switch x := v.(type) {
	case bool:
		return NewBool(x), true
	case uint8:
		return NewUint8(x), true
	case uint16:
		return NewUint16(x), true
	case uint32:
		return NewUint32(x), true
	case uint64:
		return NewUint64(x), true
	case int8:
		return NewInt8(x), true
	case int16:
		return NewInt16(x), true
	case int32:
		return NewInt32(x), true
	case int64:
		return NewInt64(x), true
	case float32:
		return NewFloat(x), true
	case float64:
		return NewDouble(x), true
	case string:
		return NewString(x), true
	default:
		return Object{}, false
	}
}

// Kind returns the Object's tagged kind.
func (o Object) Kind() Kind { return o.kind }

// stringLen returns the logical length of a String Object: the offset of
// the first NUL byte within its 16-byte storage, or -1 if no NUL is present
// (treated as an invalid Object, since it could never have been produced
// by NewString or a wire decode).
func (o Object) stringLen() int {
	for i, b := range o.raw {
		if b == 0 {
			return i
		}
	}
	return -1
}

// Size returns the number of bytes this Object occupies on the wire (tag
// byte plus payload), or invalidSize if the Object cannot be serialized:
// Untyped, a Bool whose raw byte is neither 0 nor 1, or a String with no NUL
// in its 16-byte storage.
func (o Object) Size() int {
	switch o.kind {
	case KindBool:
		// Read the raw storage byte, not a typed accessor: an Object whose
		// Bool payload was poked to something other than 0/1 through its raw
		// storage must still be caught here.
		if b := o.raw[0]; b != 0 && b != 1 {
			return invalidSize
		}
		return 1
	case KindUint8, KindInt8:
		return 2
	case KindUint16, KindInt16:
		return 3
	case KindUint32, KindInt32, KindFloat:
		return 5
	case KindUint64, KindInt64, KindDouble:
		return 9
	case KindString:
		n := o.stringLen()
		if n < 0 {
			return invalidSize
		}
		return 1 + n
	default:
		return invalidSize
	}
}

// payloadBytes returns the slice of raw holding the serialized payload for
// kinds whose Size() is valid; it is only meaningful when Size() != invalidSize.
func (o Object) payloadBytes() []byte {
	switch o.kind {
	case KindBool:
		return nil
	case KindUint8, KindInt8:
		return o.raw[:1]
	case KindUint16, KindInt16:
		return o.raw[:2]
	case KindUint32, KindInt32, KindFloat:
		return o.raw[:4]
	case KindUint64, KindInt64, KindDouble:
		return o.raw[:8]
	case KindString:
		return o.raw[:o.stringLen()]
	default:
		return nil
	}
}

// Equal reports whether a and b are both valid and would serialize to the
// same bytes: equal kind and equal payload bytes. Consequences worth
// knowing: two Float/Double NaNs compare equal only if bit-identical
// (Object(NaN) == Object(NaN) for the same NaN payload), and +0.0 != -0.0
// since their sign bits differ.
func Equal(a, b Object) bool {
	if a.kind != b.kind {
		return false
	}
	if a.Size() == invalidSize || b.Size() == invalidSize {
		return false
	}
	pa, pb := a.payloadBytes(), b.payloadBytes()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}
	return true
}

// Bool returns the Object's value if it is a valid Bool.
func (o Object) Bool() (bool, bool) {
	if o.kind != KindBool || o.Size() == invalidSize {
		return false, false
	}
	return o.raw[0] != 0, true
}

// Uint8 returns the Object's value if it is a Uint8.
func (o Object) Uint8() (uint8, bool) {
	if o.kind != KindUint8 {
		return 0, false
	}
	return o.raw[0], true
}

// Uint16 returns the Object's value if it is a Uint16.
func (o Object) Uint16() (uint16, bool) {
	if o.kind != KindUint16 {
		return 0, false
	}
	return binary.BigEndian.Uint16(o.raw[:2]), true
}

// Uint32 returns the Object's value if it is a Uint32.
func (o Object) Uint32() (uint32, bool) {
	if o.kind != KindUint32 {
		return 0, false
	}
	return binary.BigEndian.Uint32(o.raw[:4]), true
}

// Uint64 returns the Object's value if it is a Uint64.
func (o Object) Uint64() (uint64, bool) {
	if o.kind != KindUint64 {
		return 0, false
	}
	return binary.BigEndian.Uint64(o.raw[:8]), true
}

// Int8 returns the Object's value if it is an Int8.
func (o Object) Int8() (int8, bool) {
	if o.kind != KindInt8 {
		return 0, false
	}
	return int8(o.raw[0]), true
}

// Int16 returns the Object's value if it is an Int16.
func (o Object) Int16() (int16, bool) {
	if o.kind != KindInt16 {
		return 0, false
	}
	return int16(binary.BigEndian.Uint16(o.raw[:2])), true
}

// Int32 returns the Object's value if it is an Int32.
func (o Object) Int32() (int32, bool) {
	if o.kind != KindInt32 {
		return 0, false
	}
	return int32(binary.BigEndian.Uint32(o.raw[:4])), true
}

// Int64 returns the Object's value if it is an Int64.
func (o Object) Int64() (int64, bool) {
	if o.kind != KindInt64 {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(o.raw[:8])), true
}

// Float returns the Object's value if it is a Float.
func (o Object) Float() (float32, bool) {
	if o.kind != KindFloat {
		return 0, false
	}
	return math.Float32frombits(binary.BigEndian.Uint32(o.raw[:4])), true
}

// Double returns the Object's value if it is a Double.
func (o Object) Double() (float64, bool) {
	if o.kind != KindDouble {
		return 0, false
	}
	return math.Float64frombits(binary.BigEndian.Uint64(o.raw[:8])), true
}

// String returns the Object's value if it is a valid String.
func (o Object) String() (string, bool) {
	if o.kind != KindString {
		return "", false
	}
	n := o.stringLen()
	if n < 0 {
		return "", false
	}
	return string(o.raw[:n]), true
}

// wireTag returns the tag byte this Object serializes to. Callers must only
// call it once Size() has confirmed the Object is valid.
func (o Object) wireTag() byte {
	switch o.kind {
	case KindBool:
		if o.raw[0] != 0 {
			return tagBoolTrue
		}
		return tagBoolFalse
	case KindUint8:
		return tagUint8
	case KindUint16:
		return tagUint16
	case KindUint32:
		return tagUint32
	case KindInt8:
		return tagInt8
	case KindInt16:
		return tagInt16
	case KindInt32:
		return tagInt32
	case KindInt64:
		return tagInt64
	case KindUint64:
		return tagUint64
	case KindFloat:
		return tagFloat
	case KindDouble:
		return tagDouble
	case KindString:
		return tagStringLo + byte(o.stringLen())
	default:
		return 0
	}
}

// objectFromWire builds an Object from a wire tag byte and its payload
// bytes. payload must already be exactly payloadSize(tag) bytes long.
func objectFromWire(tag byte, payload []byte) (Object, bool) {
	switch tag {
	case tagBoolFalse:
		return NewBool(false), true
	case tagBoolTrue:
		return NewBool(true), true
	case tagUint8:
		return NewUint8(payload[0]), true
	case tagInt8:
		return NewInt8(int8(payload[0])), true
	case tagUint16:
		return NewUint16(binary.BigEndian.Uint16(payload)), true
	case tagInt16:
		return NewInt16(int16(binary.BigEndian.Uint16(payload))), true
	case tagUint32:
		return NewUint32(binary.BigEndian.Uint32(payload)), true
	case tagInt32:
		return NewInt32(int32(binary.BigEndian.Uint32(payload))), true
	case tagFloat:
		return NewFloat(math.Float32frombits(binary.BigEndian.Uint32(payload))), true
	case tagUint64:
		return NewUint64(binary.BigEndian.Uint64(payload)), true
	case tagInt64:
		return NewInt64(int64(binary.BigEndian.Uint64(payload))), true
	case tagDouble:
		return NewDouble(math.Float64frombits(binary.BigEndian.Uint64(payload))), true
	default:
		if tag >= tagStringLo && tag <= tagStringHi {
			return NewString(string(payload)), true
		}
		return Object{}, false
	}
}
