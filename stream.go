package msglite

// Packer serializes one Message at a time into an internal buffer and
// yields it byte by byte, for callers that write to a stream (a UART, a
// socket) one byte at a time instead of handing off a whole slice.
//
// The zero value is ready to use.
type Packer struct {
	buf      [MaxFrameLen]byte
	pos, len int
}

// Put packs msg into the Packer's internal buffer, ready for Get to drain
// it one byte at a time. Any bytes of a previous message not yet drained are
// abandoned. It returns false if msg cannot be serialized; Get then reports
// -1 until the next successful Put.
func (p *Packer) Put(msg Message) bool {
	n, err := Pack(msg, p.buf[:])
	if err != nil {
		p.pos = p.len
		return false
	}
	p.len = n
	p.pos = 0
	return true
}

// Get returns the next byte of the message passed to Put, or -1 once every
// byte has been returned (or if Put has never been called).
func (p *Packer) Get() int {
	if p.pos >= p.len {
		return -1
	}
	b := p.buf[p.pos]
	p.pos++
	return int(b)
}

// Unpacker reconstructs Messages from a byte stream fed one byte at a time,
// resynchronizing on its own after corruption: a byte that cannot belong to
// the frame currently being assembled is discarded and the search for the
// next frame resumes with the following byte, rather than the Unpacker
// getting stuck or panicking.
//
// The zero value is ready to use.
type Unpacker struct {
	buf [MaxFrameLen]byte
	len int // bytes accepted into buf so far; 0 means hunting for a header

	remainingObjects int
	remainingBytes   int // payload bytes left for the object currently being read
	crcHeader        uint32
	crcBody          uint32

	msg   Message
	ready bool
}

// Put feeds the next byte of the stream to the Unpacker. It returns true
// only if this exact byte completed and CRC-verified a Message, ready for
// Get to retrieve; it returns false for every other outcome, including a
// byte accepted into a frame still in progress and a byte rejected and
// discarded to resync. A caller that wants every completed message calls
// Get whenever Put returns true (or, equivalently, after every call: Get
// reports nil when nothing is ready).
func (u *Unpacker) Put(b byte) bool {
	switch {
	case u.len == 0:
		if b != tagHeader {
			return false
		}
		u.buf[0] = b
		u.len = 1
		return false

	case u.len == 1:
		if b != tagCRC {
			u.reset()
			return false
		}
		u.buf[1] = b
		u.crcHeader = 0
		u.len = 2
		return false

	case u.len <= 5:
		u.buf[u.len] = b
		u.len++
		return false

	case u.len == 6:
		count := int(b) - countBase
		if count < 0 || count > MaxObjects {
			u.reset()
			return false
		}
		u.buf[6] = b

		var header Fixed[frameHeader]
		if err := header.UnmarshalBinary(u.buf[:7]); err != nil {
			u.reset()
			return false
		}
		u.crcHeader = header.Payload.CRC

		u.remainingObjects = count
		u.remainingBytes = 0
		u.crcBody = CRC32B(0, u.buf[6:7])
		u.len = 7
		return u.checkComplete()

	default:
		if u.len >= MaxFrameLen {
			u.reset()
			return false
		}
		if u.remainingBytes > 0 {
			u.remainingBytes--
		} else if u.remainingObjects > 0 {
			n := payloadSize(b)
			if n < 0 {
				u.reset()
				return false
			}
			u.remainingObjects--
			u.remainingBytes = n
		} else {
			u.reset()
			return false
		}
		u.buf[u.len] = b
		u.crcBody = CRC32B(u.crcBody, u.buf[u.len:u.len+1])
		u.len++
		return u.checkComplete()
	}
}

// checkComplete is called after every count or body byte is accepted. It
// returns false while the frame is still being assembled. Once all declared
// objects have been consumed it verifies the CRC and decodes the body,
// returning true only if that succeeds; a checksum or decode failure
// resyncs the same way a rejected byte would.
func (u *Unpacker) checkComplete() bool {
	if u.len < MinFrameLen || u.remainingObjects > 0 || u.remainingBytes > 0 {
		return false
	}

	if u.crcHeader != u.crcBody {
		u.reset()
		return false
	}

	msg, _, err := unpackBody(u.buf[6:u.len])
	if err != nil {
		u.reset()
		return false
	}

	u.msg = msg
	u.ready = true
	return true
}

// reset discards everything accepted so far and returns the Unpacker to its
// header-hunting state.
func (u *Unpacker) reset() {
	*u = Unpacker{}
}

// Get returns the most recently completed Message, or nil if no message is
// ready. Calling Get consumes the ready message and resets the Unpacker to
// begin hunting for the next frame.
func (u *Unpacker) Get() *Message {
	if !u.ready {
		return nil
	}
	m := u.msg
	u.reset()
	return &m
}
