package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTypeString(t *testing.T) {
	require.Equal(t, "REG_SZ", REG_SZ.String())
	require.Equal(t, "REG_QWORD", REG_QWORD.String())
	require.Equal(t, "UNKNOWN_TYPE_99", ValueType(99).String())
	require.False(t, ValueType(99).Known())
	require.True(t, REG_NONE.Known())
}

func TestValueRendering(t *testing.T) {
	require.Equal(t, "hello", String("hello").String())
	require.Equal(t, "1337", Dword(1337).String())
	require.Equal(t, "13371337", Qword(13371337).String())
	require.Equal(t, "[1 2 3]", Binary{1, 2, 3}.String())
	require.Equal(t, "?(REG_NONE)", None{}.String())
	require.Equal(t, "?(UNKNOWN_TYPE_99)", Unknown{Type: 99}.String())
}

func TestStatusErrorMessage(t *testing.T) {
	err := StatusError("open registry key", `\Registry\User`, 0xC0000022)
	require.Equal(t,
		`could not open registry key \Registry\User: status 0xC0000022`,
		err.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := DecodeError("decode value", cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, ErrKindDecode, err.Kind)

	var typed *Error
	require.ErrorAs(t, error(err), &typed)
}
