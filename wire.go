package msglite

// Wire-format constants. Grounded on original_source/msglite/msglite.h.
const (
	// MinFrameLen is the length of an empty message's frame (header + CRC + count byte).
	MinFrameLen = 7
	// MaxFrameLen is the length of the largest possible frame: 15 strings of 15 bytes each.
	MaxFrameLen = 1 + (1 + 4) + (1 + 15*(15+1))
	// MaxObjects is the largest number of Objects a Message may hold.
	MaxObjects = 15
	// MaxStringLen is the largest number of bytes a String Object may carry.
	MaxStringLen = 15
)

const (
	tagHeader = 0x92
	tagCRC    = 0xCE

	tagBoolFalse = 0xC2
	tagBoolTrue  = 0xC3
	tagUint8     = 0xCC
	tagUint16    = 0xCD
	tagUint32    = 0xCE
	tagUint64    = 0xCF
	tagInt8      = 0xD0
	tagInt16     = 0xD1
	tagInt32     = 0xD2
	tagInt64     = 0xD3
	tagFloat     = 0xCA
	tagDouble    = 0xCB
	tagStringLo  = 0xA0
	tagStringHi  = 0xAF

	countBase = 0x90
)

// frameHeader is the fixed-size leading part of every frame: the two magic
// bytes, the CRC32 of everything from the count byte onward, and the count
// byte itself. It is serialized with Fixed so the header's reflection-based
// size computation is cached once instead of hand-coding an offset table.
type frameHeader struct {
	Magic1 uint8
	Magic2 uint8
	CRC    uint32
	Count  uint8
}

// payloadSize returns the number of payload bytes (excluding the tag byte
// itself) that follow a given wire type tag, or -1 if the tag is unknown.
// Grounded on original_source/msglite/msglite.cpp's bytes_of_type table.
func payloadSize(tag byte) int {
	switch tag {
	case tagBoolFalse, tagBoolTrue:
		return 0
	case tagUint8, tagInt8:
		return 1
	case tagUint16, tagInt16:
		return 2
	case tagUint32, tagInt32, tagFloat:
		return 4
	case tagUint64, tagInt64, tagDouble:
		return 8
	default:
		if tag >= tagStringLo && tag <= tagStringHi {
			return int(tag - tagStringLo)
		}
		return -1
	}
}
