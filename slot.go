package msglite

import "io"

// SlotWriter packs messages into fixed-width, zero-padded slots: a layout
// used by flash pages, EEPROM records, and shared-memory IPC ring buffers,
// where every record must occupy the same number of bytes regardless of
// how many objects it actually carries.
type SlotWriter struct {
	w        *Writer
	slotSize int
}

// NewSlotWriter wraps w, writing one fixed-size slot per WriteSlot call.
// slotSize must be between MinFrameLen and MaxFrameLen.
func NewSlotWriter(w io.Writer, slotSize int) (*SlotWriter, error) {
	if slotSize < MinFrameLen || slotSize > MaxFrameLen {
		return nil, ErrInvalidSlotSize
	}
	ww, err := NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &SlotWriter{w: ww, slotSize: slotSize}, nil
}

// WriteSlot packs msg and writes it followed by zero padding out to the
// configured slot size. It fails with ErrBufferTooSmall if the packed
// frame does not fit in a single slot.
func (s *SlotWriter) WriteSlot(msg Message) error {
	var buf Buffer
	if err := PackBuffer(msg, &buf); err != nil {
		return err
	}
	if buf.Len > s.slotSize {
		return ErrBufferTooSmall
	}
	s.w.WriteBytes(buf.Bytes())
	s.w.WriteZeros(int64(s.slotSize - buf.Len))
	return s.w.Flush()
}

// SlotReader reads fixed-width slots written by SlotWriter.
type SlotReader struct {
	r        io.Reader
	slotSize int
}

// NewSlotReader wraps r, reading one fixed-size slot per ReadSlot call.
// slotSize must match the value NewSlotWriter was configured with.
func NewSlotReader(r io.Reader, slotSize int) (*SlotReader, error) {
	if slotSize < MinFrameLen || slotSize > MaxFrameLen {
		return nil, ErrInvalidSlotSize
	}
	return &SlotReader{r: r, slotSize: slotSize}, nil
}

// ReadSlot reads one fixed-size slot and decodes the frame stored in it
// into msg. A slot is generally larger than the frame it holds, so ReadSlot
// first scans the body to find where the frame actually ends before handing
// that exact range to Unpack, which does not tolerate anything past the
// frame's last object. Besides the usual frame errors, it returns a
// trailing-data error if the bytes between the end of the frame and the end
// of the slot are not all zero, since that padding is the one thing a
// slot-based store can still check beyond the frame's own CRC.
func (s *SlotReader) ReadSlot(msg *Message) error {
	lr := LimitReader(s.r, int64(s.slotSize))
	data := make([]byte, s.slotSize)
	if _, err := io.ReadFull(lr, data); err != nil {
		return err
	}

	_, consumed, err := unpackBody(data[6:])
	if err != nil {
		return err
	}
	frameLen := 6 + consumed

	if err := Unpack(data[:frameLen], msg); err != nil {
		return err
	}
	return CheckBufferNotZeros(data[frameLen:])
}
