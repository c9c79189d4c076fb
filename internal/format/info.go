package format

import "fmt"

// KeyBasicInfo models the fixed header of one subkey enumeration record.
// The name bytes follow the header immediately and are not carried here;
// callers slice them out of the original buffer using NameLength.
type KeyBasicInfo struct {
	LastWriteTime uint64 // raw FILETIME, see FiletimeToTime
	TitleIndex    uint32
	NameLength    uint32 // bytes of UTF-16LE name data after the header
}

// ValueFullInfo models the fixed header of one value enumeration record.
// DataOffset is absolute from the start of the record, pointing past the
// name bytes into the typed payload region.
type ValueFullInfo struct {
	TitleIndex uint32
	Type       uint32
	DataOffset uint32
	DataLength uint32
	NameLength uint32
}

// DecodeKeyBasicInfo decodes the fixed header of a subkey record with
// comprehensive bounds checking. The timestamp is carried but not
// interpreted; use FiletimeToTime if a wall-clock value is needed.
func DecodeKeyBasicInfo(b []byte) (KeyBasicInfo, error) {
	if len(b) < KeyBasicInfoSize {
		return KeyBasicInfo{}, fmt.Errorf("key info: %w (have %d, need %d)",
			ErrTruncated, len(b), KeyBasicInfoSize)
	}

	lastWrite, err := CheckedReadU64(b, KeyLastWriteOffset)
	if err != nil {
		return KeyBasicInfo{}, fmt.Errorf("key info last write: %w", err)
	}
	title, err := CheckedReadU32(b, KeyTitleOffset)
	if err != nil {
		return KeyBasicInfo{}, fmt.Errorf("key info title index: %w", err)
	}
	nameLen, err := CheckedReadU32(b, KeyNameLenOffset)
	if err != nil {
		return KeyBasicInfo{}, fmt.Errorf("key info name len: %w", err)
	}

	return KeyBasicInfo{
		LastWriteTime: lastWrite,
		TitleIndex:    title,
		NameLength:    nameLen,
	}, nil
}

// DecodeValueFullInfo decodes the fixed header of a value record with
// comprehensive bounds checking. The DataOffset/DataLength pair is not
// validated against the buffer here; that check belongs to the payload
// decoder, which has the full record in hand.
func DecodeValueFullInfo(b []byte) (ValueFullInfo, error) {
	if len(b) < ValueFullInfoSize {
		return ValueFullInfo{}, fmt.Errorf("value info: %w (have %d, need %d)",
			ErrTruncated, len(b), ValueFullInfoSize)
	}

	title, err := CheckedReadU32(b, ValueTitleOffset)
	if err != nil {
		return ValueFullInfo{}, fmt.Errorf("value info title index: %w", err)
	}
	valType, err := CheckedReadU32(b, ValueTypeOffset)
	if err != nil {
		return ValueFullInfo{}, fmt.Errorf("value info type: %w", err)
	}
	dataOff, err := CheckedReadU32(b, ValueDataOffOffset)
	if err != nil {
		return ValueFullInfo{}, fmt.Errorf("value info data off: %w", err)
	}
	dataLen, err := CheckedReadU32(b, ValueDataLenOffset)
	if err != nil {
		return ValueFullInfo{}, fmt.Errorf("value info data len: %w", err)
	}
	nameLen, err := CheckedReadU32(b, ValueNameLenOffset)
	if err != nil {
		return ValueFullInfo{}, fmt.Errorf("value info name len: %w", err)
	}

	return ValueFullInfo{
		TitleIndex: title,
		Type:       valType,
		DataOffset: dataOff,
		DataLength: dataLen,
		NameLength: nameLen,
	}, nil
}

// CheckDataBounds validates that the header's data region lies inside the
// record. Violations are reported as ErrDataBounds, never a panic.
func (v ValueFullInfo) CheckDataBounds(recordLen int) error {
	end := uint64(v.DataOffset) + uint64(v.DataLength)
	if end > uint64(recordLen) {
		return fmt.Errorf("value data [%#x:+%d] exceeds record of %d bytes: %w",
			v.DataOffset, v.DataLength, recordLen, ErrDataBounds)
	}
	return nil
}
