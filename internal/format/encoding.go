package format

import "encoding/binary"

// Binary encoding utilities for the enumeration buffers, which use
// little-endian byte order throughout. The single big-endian reader exists
// only for the REG_DWORD_BIG_ENDIAN payload type.

// ReadU16 reads a uint16 from the buffer at the specified offset in little-endian format.
func ReadU16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a uint32 from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// ReadU64 reads a uint64 from the buffer at the specified offset in little-endian format.
func ReadU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

// ReadU32BE reads a uint32 from the buffer at the specified offset in big-endian format.
func ReadU32BE(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

// PutU32 writes a uint32 to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutU64 writes a uint64 to the buffer at the specified offset in little-endian format.
func PutU64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

// CheckedReadU32 reads a little-endian uint32 with bounds validation,
// returning ErrShortRead instead of reading past the end of the buffer.
func CheckedReadU32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, ErrShortRead
	}
	return binary.LittleEndian.Uint32(b[off : off+4]), nil
}

// CheckedReadU64 reads a little-endian uint64 with bounds validation,
// returning ErrShortRead instead of reading past the end of the buffer.
func CheckedReadU64(b []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(b) {
		return 0, ErrShortRead
	}
	return binary.LittleEndian.Uint64(b[off : off+8]), nil
}
