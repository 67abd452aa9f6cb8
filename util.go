package msglite

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is default binary order
	Order = BE
)

const BUFFER_SIZE = 4096

var (
	empty   [BUFFER_SIZE]byte
	discard [BUFFER_SIZE]byte
)

func Ptr[T any](v T) *T { return &v } // ptr is a helper function to create a pointer to a value, making test setup cleaner.

func Discard(r io.Reader, n int64) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 {
		return 0, ErrDiscardNegative
	}
	if n <= BUFFER_SIZE {
		skip, err := r.Read(discard[:n])
		return int64(skip), err
	}
	return io.CopyN(io.Discard, r, n)
}

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// MAX_PADDING defines the maximum number of trailing bytes to check.
// This prevents an Out-Of-Memory error if a parsing bug leaves a large
// amount of data in the reader. Anything larger is considered a protocol error.
const MAX_PADDING = 1024 // 1KB

// CheckTrailingNotZeros verifies that any remaining bytes in a reader are all zero.
// This is critical for parsers to ensure the entire expected payload was consumed
// and no garbage data follows, which could indicate a bug or a malicious payload.
func CheckTrailingNotZeros(r io.Reader) error {
	// Fast path for a common reader type to avoid any allocations.
	if reader, ok := r.(*BytesReader); ok && reader.Available() == 0 {
		return nil
	}

	// Use a LimitedReader to enforce our heuristic limit. We read up to
	// `MAX_PADDING + 1` bytes; if the read succeeds, we know there was
	// too much data.
	lr := &io.LimitedReader{R: r, N: MAX_PADDING + 1}

	trailingData, err := io.ReadAll(lr)
	if err != nil {
		return err
	}

	// Heuristic check: Did we read more than the allowed padding size?
	if len(trailingData) > MAX_PADDING {
		return fmt.Errorf("%w: exceeds maximum expected size of %d bytes", ErrTrailingData, MAX_PADDING)
	}

	// Check if the data we did read contains non-zero bytes.
	for i, b := range trailingData {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}

	return nil
}

// CheckBufferNotZeros verifies that a byte slice contains only zero bytes.
// It mirrors CheckTrailingNotZeros for callers that already hold the
// trailing region in memory (e.g. Fixed's UnmarshalBinary) instead of an
// io.Reader.
func CheckBufferNotZeros(data []byte) error {
	for i, b := range data {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}
	return nil
}

// crc32Table is the standard CRC-32/ISO-HDLC table (reflected polynomial
// 0xEDB88320), generated once at init time rather than hand-written, since
// this package needs the table for a single well-known polynomial only.
var crc32Table = func() [256]uint32 {
	var t [256]uint32
	for i := range t {
		c := uint32(i)
		for range 8 {
			if c&1 != 0 {
				c = 0xEDB88320 ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}()

// CRC32B computes the CRC-32/ISO-HDLC checksum of data, seeded from a
// previous partial checksum (pass 0 to start a new checksum). It is exposed
// so callers can checksum foreign data with the same polynomial the wire
// format uses, and is the incremental primitive the streaming Unpacker
// folds one byte at a time into crcBody.
func CRC32B(seed uint32, data []byte) uint32 {
	crc := seed ^ 0xFFFFFFFF
	for _, b := range data {
		crc = crc32Table[byte(crc)^b] ^ (crc >> 8)
	}
	return crc ^ 0xFFFFFFFF
}
