package regkey

import (
	"fmt"

	"github.com/joshuapare/regnt/internal/format"
	"github.com/joshuapare/regnt/internal/wintext"
	"github.com/joshuapare/regnt/pkg/types"
)

// decodeValue interprets the payload region of one value record according to
// its type tag. The data offset/length pair is bounds-checked against the
// record before any slicing; a violation is a decode error, never a panic.
func decodeValue(info format.ValueFullInfo, raw []byte) (types.Value, error) {
	if err := info.CheckDataBounds(len(raw)); err != nil {
		return nil, types.DecodeError("decode value data", err)
	}
	data := raw[info.DataOffset : uint64(info.DataOffset)+uint64(info.DataLength)]

	switch typ := types.ValueType(info.Type); typ {
	case types.REG_NONE:
		return types.None{}, nil

	case types.REG_SZ, types.REG_EXPAND_SZ:
		// The native API is permitted to report zero-length strings;
		// those decode to "" rather than an error.
		if info.DataLength == 0 {
			return types.String(""), nil
		}
		units := wintext.StripZero(wintext.UnitsFromBytes(data))
		s, err := wintext.String(units)
		if err != nil {
			return nil, types.TextError("decode string value", err)
		}
		return types.String(s), nil

	case types.REG_DWORD:
		if len(data) < format.DWORDSize {
			return nil, types.DecodeError("decode dword value",
				fmt.Errorf("have %d bytes: %w", len(data), format.ErrShortData))
		}
		return types.Dword(format.ReadU32(data, 0)), nil

	case types.REG_DWORD_BIG_ENDIAN:
		if len(data) < format.DWORDSize {
			return nil, types.DecodeError("decode dword value",
				fmt.Errorf("have %d bytes: %w", len(data), format.ErrShortData))
		}
		return types.Dword(format.ReadU32BE(data, 0)), nil

	case types.REG_QWORD:
		if len(data) < format.QWORDSize {
			return nil, types.DecodeError("decode qword value",
				fmt.Errorf("have %d bytes: %w", len(data), format.ErrShortData))
		}
		return types.Qword(format.ReadU64(data, 0)), nil

	case types.REG_BINARY:
		out := make([]byte, len(data))
		copy(out, data)
		return types.Binary(out), nil

	default:
		// Tags without a decode rule, recognized or not, are a valid
		// outcome rather than an error.
		return types.Unknown{Type: typ}, nil
	}
}
