package msglite

import "errors"

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("msglite: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a size conflict with bufio
	ErrSizeTooSmall = errors.New("msglite: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer, which would lead to unpredictable behavior and performance issues.
	ErrAlreadyBuffered = errors.New("msglite: reader or writer is already buffered")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("msglite: WriteTo called with a nil io.Writer")

	// ErrReadToNil indicates a ReadTo operation was attempted on a nil io.ReaderFrom.
	ErrReadToNil = errors.New("msglite: ReadTo called with a nil io.ReaderFrom")

	// ErrInvalidSeek indicates a seek was attempted to invalid position.
	ErrInvalidSeek = errors.New("msglite: seek to a invalid position")

	// ErrUnsupportedNegativeSeek indicates a backward seek was attempted on a forward-only seeker.
	ErrUnsupportedNegativeSeek = errors.New("msglite: unsupported negative offset for forward-only seeker")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("msglite: unsupported whence for forward-only seeker")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("msglite: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("msglite: reader returned invalid count from Read")

	// ErrDiscardNegative indicates a Discard operation was attempted with a negative byte count.
	ErrDiscardNegative = errors.New("msglite: cannot discard negative number of bytes")

	// ErrTrailingData is returned (wrapped) by CheckBufferNotZeros and CheckTrailingNotZeros when
	// non-zero bytes are found after the expected end of the data structure, and by Unpack when any
	// byte follows the last declared object, indicating a potential parsing error or malformed data.
	ErrTrailingData = errors.New("msglite: trailing data found after decoding")

	// ErrTruncatedData indicates that a read operation could not complete because the
	// underlying data source (e.g., buffer, stream) ended before all expected bytes were read.
	ErrTruncatedData = errors.New("msglite: truncated data")

	// ErrInvalidMessage indicates a Message failed local validation (an Untyped
	// object, a broken Bool, an over-long string, or more than MaxObjects objects)
	// and cannot be packed.
	ErrInvalidMessage = errors.New("msglite: invalid message")

	// ErrBufferTooSmall indicates the destination slice or Buffer is too small
	// to hold the packed frame.
	ErrBufferTooSmall = errors.New("msglite: destination buffer too small")

	// ErrMalformedHeader indicates the input is shorter than MinFrameLen, longer
	// than MaxFrameLen, or its first two bytes are not 0x92 0xCE.
	ErrMalformedHeader = errors.New("msglite: malformed frame header")

	// ErrChecksumMismatch indicates the CRC32 stored in the frame does not match
	// the CRC32 computed over the frame body.
	ErrChecksumMismatch = errors.New("msglite: checksum mismatch")

	// ErrUnknownType indicates a body byte was expected to be a type tag but did
	// not match any known object tag.
	ErrUnknownType = errors.New("msglite: unknown object type tag")

	// ErrTooManyObjects indicates a decoded or constructed message declares more
	// than MaxObjects objects.
	ErrTooManyObjects = errors.New("msglite: too many objects in message")

	// ErrInvalidSlotSize indicates a fixed-slot writer or reader was configured
	// with a slot size outside [MinFrameLen, MaxFrameLen].
	ErrInvalidSlotSize = errors.New("msglite: invalid slot size")
)
