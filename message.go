package msglite

// Message is a fixed-capacity ordered list of up to MaxObjects Objects.
//
// Objects is a fixed array, not a slice, so that a Message built on the
// stack or embedded in another struct never triggers a heap allocation by
// itself; Count tracks how many of the array's slots are in use. The
// allocating convenience layer (MessageBatch, the Codec methods on
// *Message) is a separate, explicitly optional surface.
type Message struct {
	Objects [MaxObjects]Object
	Count   int
}

// NewMessage builds a Message from a variadic list of Go values, each
// converted through NewObject. A value of a type NewObject does not
// recognize, or more than MaxObjects values, produces a Message that Size
// reports as invalid; NewMessage never panics.
func NewMessage(values ...any) Message {
	var m Message
	if len(values) > MaxObjects {
		m.Count = len(values)
		return m
	}
	for _, v := range values {
		obj, ok := NewObject(v)
		if !ok {
			// Untyped is the zero Kind; leaving obj untouched records the
			// failure as an Untyped object, which Size already rejects.
			obj = Object{}
		}
		m.Objects[m.Count] = obj
		m.Count++
	}
	return m
}

// Size returns the number of bytes this Message occupies on the wire
// (header, CRC, count byte, and every object's tag+payload), or
// invalidSize if the message cannot be packed: too many objects, or any
// object individually invalid.
func (m Message) Size() int {
	if m.Count < 0 || m.Count > MaxObjects {
		return invalidSize
	}
	total := MinFrameLen
	for i := 0; i < m.Count; i++ {
		sz := m.Objects[i].Size()
		if sz == invalidSize {
			return invalidSize
		}
		total += sz
	}
	return total
}

// Parse matches specs against the Message's objects in order. Each spec is
// either a filter value (any of the 13 primitive Go types NewObject
// accepts) that must equal the corresponding object, or a pointer to one of
// those types that receives the corresponding object's value. Parse
// succeeds only if len(specs) == m.Count, every filter matches, and every
// extractor's pointer type matches its object's Kind. Specs are checked in
// order and extractors write through as soon as their own spec matches; a
// later mismatch does not unwind pointers already written by earlier specs.
func (m Message) Parse(specs ...any) bool {
	if len(specs) != m.Count {
		return false
	}
	for i, spec := range specs {
		obj := m.Objects[i]
		switch p := spec.(type) {
		case bool:
			v, ok := obj.Bool()
			if !ok || v != p {
				return false
			}
		case uint8:
			v, ok := obj.Uint8()
			if !ok || v != p {
				return false
			}
		case uint16:
			v, ok := obj.Uint16()
			if !ok || v != p {
				return false
			}
		case uint32:
			v, ok := obj.Uint32()
			if !ok || v != p {
				return false
			}
		case uint64:
			v, ok := obj.Uint64()
			if !ok || v != p {
				return false
			}
		case int8:
			v, ok := obj.Int8()
			if !ok || v != p {
				return false
			}
		case int16:
			v, ok := obj.Int16()
			if !ok || v != p {
				return false
			}
		case int32:
			v, ok := obj.Int32()
			if !ok || v != p {
				return false
			}
		case int64:
			v, ok := obj.Int64()
			if !ok || v != p {
				return false
			}
		case float32:
			if !Equal(obj, NewFloat(p)) {
				return false
			}
		case float64:
			if !Equal(obj, NewDouble(p)) {
				return false
			}
		case string:
			v, ok := obj.String()
			if !ok || v != p {
				return false
			}
		case *bool:
			v, ok := obj.Bool()
			if !ok {
				return false
			}
			*p = v
		case *uint8:
			v, ok := obj.Uint8()
			if !ok {
				return false
			}
			*p = v
		case *uint16:
			v, ok := obj.Uint16()
			if !ok {
				return false
			}
			*p = v
		case *uint32:
			v, ok := obj.Uint32()
			if !ok {
				return false
			}
			*p = v
		case *uint64:
			v, ok := obj.Uint64()
			if !ok {
				return false
			}
			*p = v
		case *int8:
			v, ok := obj.Int8()
			if !ok {
				return false
			}
			*p = v
		case *int16:
			v, ok := obj.Int16()
			if !ok {
				return false
			}
			*p = v
		case *int32:
			v, ok := obj.Int32()
			if !ok {
				return false
			}
			*p = v
		case *int64:
			v, ok := obj.Int64()
			if !ok {
				return false
			}
			*p = v
		case *float32:
			v, ok := obj.Float()
			if !ok {
				return false
			}
			*p = v
		case *float64:
			v, ok := obj.Double()
			if !ok {
				return false
			}
			*p = v
		case *string:
			v, ok := obj.String()
			if !ok {
				return false
			}
			*p = v
		default:
			return false
		}
	}
	return true
}
