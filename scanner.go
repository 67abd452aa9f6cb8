package msglite

import (
	"bytes"
	"io"
)

// StreamScanner decodes a sequence of frames out of an io.Reader, skipping
// and resynchronizing past any garbage between them. It is built around
// Unpacker's byte-at-a-time state machine but uses a PeekableReader to
// avoid paying the one-byte-at-a-time cost while hunting for the next
// frame's header: once the Unpacker is between frames, StreamScanner peeks
// ahead and jumps straight to the next candidate header byte instead of
// feeding garbage in one at a time.
type StreamScanner struct {
	pr *PeekableReader
	u  Unpacker
}

// NewStreamScanner wraps r. If r is already a *PeekableReader it is reused.
func NewStreamScanner(r io.Reader) *StreamScanner {
	return &StreamScanner{pr: PeekReader(r)}
}

// Next returns the next frame decoded from the stream, blocking on reads
// from the underlying reader as needed. It returns the first error the
// underlying reader returns (including io.EOF once the stream is
// exhausted); a checksum failure or malformed frame does not surface as an
// error here, since the Unpacker silently resyncs past it and Next keeps
// reading until either a frame completes or the stream ends.
func (s *StreamScanner) Next() (*Message, error) {
	var one [1]byte
	for {
		if s.u.len == 0 {
			if err := s.skipToHeader(); err != nil {
				return nil, err
			}
		}

		n, err := s.pr.Read(one[:])
		if n == 0 {
			if err == nil {
				err = io.ErrNoProgress
			}
			return nil, err
		}

		s.u.Put(one[0])
		if msg := s.u.Get(); msg != nil {
			return msg, nil
		}
	}
}

// skipToHeader discards bytes up to (but not including) the next occurrence
// of the frame header byte, using Peek to examine a whole chunk at once
// rather than discarding one byte per Read call.
func (s *StreamScanner) skipToHeader() error {
	peeked, err := s.pr.Peek(BUFFER_SIZE)
	if len(peeked) == 0 {
		if err != nil {
			return err
		}
		return io.EOF
	}

	idx := bytes.IndexByte(peeked, tagHeader)
	if idx < 0 {
		_, err := io.ReadFull(s.pr, make([]byte, len(peeked)))
		return err
	}
	if idx == 0 {
		return nil
	}
	_, err = io.ReadFull(s.pr, make([]byte, idx))
	return err
}
