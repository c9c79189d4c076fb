package wintext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitsShortBufferIsEmpty(t *testing.T) {
	raw := []byte{'R', 0, 'u', 0, 'n', 0}

	require.Len(t, Units(raw, 0, 3), 3)
	require.Empty(t, Units(raw, 0, 4), "short buffer must yield empty, not partial")
	require.Empty(t, Units(raw, 2, 3))
	require.Empty(t, Units(raw, 100, 1))
	require.Empty(t, Units(raw, 0, 0))
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"Run", "CurrentVersion", "Grüße", "漢字", "emoji 😀 pair"} {
		units := EncodeTerminated(name)
		raw := make([]byte, len(units)*2)
		for i, u := range units {
			raw[i*2] = byte(u)
			raw[i*2+1] = byte(u >> 8)
		}

		got, err := String(StripZero(Units(raw, 0, uint32(len(units)))))
		require.NoError(t, err)
		require.Equal(t, name, got)
		require.NotContains(t, got, "\x00")
	}
}

func TestStripZeroEmbedded(t *testing.T) {
	units := []uint16{'a', 0, 'b', 0, 0, 'c'}
	require.Equal(t, []uint16{'a', 'b', 'c'}, StripZero(units))
}

func TestStringRejectsUnpairedSurrogates(t *testing.T) {
	_, err := String([]uint16{'a', 0xD800, 'b'})
	require.ErrorIs(t, err, ErrInvalidText)

	_, err = String([]uint16{0xDC00})
	require.ErrorIs(t, err, ErrInvalidText)

	// A proper pair is fine.
	s, err := String([]uint16{0xD83D, 0xDE00})
	require.NoError(t, err)
	require.Equal(t, "😀", s)
}

func TestUnitsFromBytesIgnoresTrailingOddByte(t *testing.T) {
	require.Equal(t, []uint16{0x6261}, UnitsFromBytes([]byte{0x61, 0x62, 0x63}))
}

func TestEncodeBytes(t *testing.T) {
	b, err := EncodeBytes("Hi")
	require.NoError(t, err)
	require.Equal(t, []byte{'H', 0, 'i', 0, 0, 0}, b)
}
