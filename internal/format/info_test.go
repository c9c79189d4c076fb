package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func buildKeyRecord(name []byte, nameLen uint32) []byte {
	buf := make([]byte, KeyBasicInfoSize+len(name))
	binary.LittleEndian.PutUint64(buf[KeyLastWriteOffset:], 0x01DB000000000000)
	binary.LittleEndian.PutUint32(buf[KeyTitleOffset:], 0)
	binary.LittleEndian.PutUint32(buf[KeyNameLenOffset:], nameLen)
	copy(buf[KeyNameOffset:], name)
	return buf
}

func TestDecodeKeyBasicInfo(t *testing.T) {
	buf := buildKeyRecord([]byte{'R', 0, 'u', 0, 'n', 0}, 6)

	info, err := DecodeKeyBasicInfo(buf)
	if err != nil {
		t.Fatalf("DecodeKeyBasicInfo: %v", err)
	}
	if info.NameLength != 6 {
		t.Fatalf("name length = %d, want 6", info.NameLength)
	}
	if info.LastWriteTime != 0x01DB000000000000 {
		t.Fatalf("last write = %#x", info.LastWriteTime)
	}
}

func TestDecodeKeyBasicInfoTruncated(t *testing.T) {
	// Every length below the fixed header size must fail without panicking.
	full := buildKeyRecord(nil, 0)
	for n := 0; n < KeyBasicInfoSize; n++ {
		_, err := DecodeKeyBasicInfo(full[:n])
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("len %d: err = %v, want ErrTruncated", n, err)
		}
	}
}

func buildValueRecord(typ uint32, name []byte, data []byte) []byte {
	dataOff := ValueFullInfoSize + len(name)
	buf := make([]byte, dataOff+len(data))
	binary.LittleEndian.PutUint32(buf[ValueTitleOffset:], 0)
	binary.LittleEndian.PutUint32(buf[ValueTypeOffset:], typ)
	binary.LittleEndian.PutUint32(buf[ValueDataOffOffset:], uint32(dataOff))
	binary.LittleEndian.PutUint32(buf[ValueDataLenOffset:], uint32(len(data)))
	binary.LittleEndian.PutUint32(buf[ValueNameLenOffset:], uint32(len(name)))
	copy(buf[ValueNameOffset:], name)
	copy(buf[dataOff:], data)
	return buf
}

func TestDecodeValueFullInfo(t *testing.T) {
	buf := buildValueRecord(4, []byte{'V', 0}, []byte{0x39, 0x05, 0, 0})

	info, err := DecodeValueFullInfo(buf)
	if err != nil {
		t.Fatalf("DecodeValueFullInfo: %v", err)
	}
	if info.Type != 4 {
		t.Fatalf("type = %d, want 4", info.Type)
	}
	if info.NameLength != 2 {
		t.Fatalf("name length = %d, want 2", info.NameLength)
	}
	if int(info.DataOffset) != ValueFullInfoSize+2 {
		t.Fatalf("data offset = %d", info.DataOffset)
	}
	if info.DataLength != 4 {
		t.Fatalf("data length = %d", info.DataLength)
	}
}

func TestDecodeValueFullInfoTruncated(t *testing.T) {
	full := buildValueRecord(1, nil, nil)
	for n := 0; n < ValueFullInfoSize; n++ {
		_, err := DecodeValueFullInfo(full[:n])
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("len %d: err = %v, want ErrTruncated", n, err)
		}
	}
}

func TestCheckDataBounds(t *testing.T) {
	info := ValueFullInfo{DataOffset: 20, DataLength: 10}
	if err := info.CheckDataBounds(30); err != nil {
		t.Fatalf("exact fit rejected: %v", err)
	}
	if err := info.CheckDataBounds(29); !errors.Is(err, ErrDataBounds) {
		t.Fatalf("err = %v, want ErrDataBounds", err)
	}

	// Offset+length overflowing uint32 must still be caught.
	huge := ValueFullInfo{DataOffset: 0xFFFFFFF0, DataLength: 0x20}
	if err := huge.CheckDataBounds(64); !errors.Is(err, ErrDataBounds) {
		t.Fatalf("overflowing bounds accepted: %v", err)
	}
}

func TestCheckedReads(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6, 7}

	if _, err := CheckedReadU32(b, 4); !errors.Is(err, ErrShortRead) {
		t.Fatalf("u32 mid-field read: %v", err)
	}
	if _, err := CheckedReadU64(b, 0); !errors.Is(err, ErrShortRead) {
		t.Fatalf("u64 mid-field read: %v", err)
	}
	v, err := CheckedReadU32(b, 0)
	if err != nil || v != 0x04030201 {
		t.Fatalf("u32 = %#x, err = %v", v, err)
	}
}
