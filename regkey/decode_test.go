package regkey

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regnt/internal/format"
	"github.com/joshuapare/regnt/internal/wintext"
	"github.com/joshuapare/regnt/pkg/types"
)

func decodeRecord(t *testing.T, raw []byte) (types.Value, error) {
	t.Helper()
	info, err := format.DecodeValueFullInfo(raw)
	require.NoError(t, err)
	return decodeValue(info, raw)
}

func TestDecodeValueDword(t *testing.T) {
	raw := valueRecord(types.REG_DWORD, "Answer", []byte{0x39, 0x05, 0x00, 0x00})

	v, err := decodeRecord(t, raw)
	require.NoError(t, err)
	require.Equal(t, types.Dword(1337), v)
}

func TestDecodeValueDwordBigEndian(t *testing.T) {
	raw := valueRecord(types.REG_DWORD_BIG_ENDIAN, "Answer", []byte{0x00, 0x00, 0x05, 0x39})

	v, err := decodeRecord(t, raw)
	require.NoError(t, err)
	// Same variant as REG_DWORD; only the read order differs.
	require.Equal(t, types.Dword(1337), v)
}

func TestDecodeValueQword(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, 13371337)
	raw := valueRecord(types.REG_QWORD, "Big", data)

	v, err := decodeRecord(t, raw)
	require.NoError(t, err)
	require.Equal(t, types.Qword(13371337), v)
}

func TestDecodeValueShortNumeric(t *testing.T) {
	for _, typ := range []types.ValueType{types.REG_DWORD, types.REG_DWORD_BIG_ENDIAN} {
		raw := valueRecord(typ, "Short", []byte{0x01, 0x02, 0x03})
		_, err := decodeRecord(t, raw)
		require.ErrorIs(t, err, format.ErrShortData, "type %s", typ)
	}

	raw := valueRecord(types.REG_QWORD, "Short", []byte{1, 2, 3, 4, 5, 6, 7})
	_, err := decodeRecord(t, raw)
	require.ErrorIs(t, err, format.ErrShortData)
}

func TestDecodeValueString(t *testing.T) {
	data, err := wintext.EncodeBytes("Hello, world!")
	require.NoError(t, err)
	raw := valueRecord(types.REG_SZ, "Greeting", data)

	v, err := decodeRecord(t, raw)
	require.NoError(t, err)
	require.Equal(t, types.String("Hello, world!"), v)
}

func TestDecodeValueEmptyString(t *testing.T) {
	for _, typ := range []types.ValueType{types.REG_SZ, types.REG_EXPAND_SZ} {
		raw := valueRecord(typ, "Empty", nil)
		v, err := decodeRecord(t, raw)
		require.NoError(t, err, "zero-length %s must not error", typ)
		require.Equal(t, types.String(""), v)
	}
}

func TestDecodeValueStringInvalidText(t *testing.T) {
	// A lone high surrogate has no string form; the failure is surfaced
	// as a text error, not substituted.
	raw := valueRecord(types.REG_SZ, "Bad", []byte{0x00, 0xD8})

	_, err := decodeRecord(t, raw)
	require.Error(t, err)
	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, types.ErrKindText, typed.Kind)
}

func TestDecodeValueOutOfBounds(t *testing.T) {
	raw := valueRecord(types.REG_BINARY, "Clipped", []byte{1, 2, 3, 4})
	// Inflate the claimed length past the record end.
	binary.LittleEndian.PutUint32(raw[format.ValueDataLenOffset:], 64)

	info, err := format.DecodeValueFullInfo(raw)
	require.NoError(t, err)
	_, err = decodeValue(info, raw)
	require.ErrorIs(t, err, format.ErrDataBounds)
}

func TestDecodeValueNone(t *testing.T) {
	raw := valueRecord(types.REG_NONE, "Nothing", nil)
	v, err := decodeRecord(t, raw)
	require.NoError(t, err)
	require.Equal(t, types.None{}, v)
}

func TestDecodeValueBinary(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	raw := valueRecord(types.REG_BINARY, "Blob", payload)

	v, err := decodeRecord(t, raw)
	require.NoError(t, err)
	require.Equal(t, types.Binary(payload), v)

	// The decoded payload is an owned copy, not a view of the record.
	raw[len(raw)-1] = 0x00
	require.Equal(t, types.Binary(payload), v)

	empty, err := decodeRecord(t, valueRecord(types.REG_BINARY, "Zero", nil))
	require.NoError(t, err)
	require.Len(t, empty, 0)
}

func TestDecodeValueUnknownTag(t *testing.T) {
	raw := valueRecord(types.ValueType(99), "Odd", []byte{1, 2, 3})

	v, err := decodeRecord(t, raw)
	require.NoError(t, err, "unrecognized tags are never an error")
	require.Equal(t, types.Unknown{Type: 99}, v)

	// Recognized tags without a decode rule behave the same way.
	v, err = decodeRecord(t, valueRecord(types.REG_MULTI_SZ, "Multi", []byte{0, 0}))
	require.NoError(t, err)
	require.Equal(t, types.Unknown{Type: types.REG_MULTI_SZ}, v)
}
