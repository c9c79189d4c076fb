// Package wintext converts between the 16-bit code-unit sequences stored in
// registry records and Go strings. Extraction and text conversion are kept
// separate: the native API permits names containing embedded NULs and
// unpaired surrogates that have no string representation, and callers may
// need the raw units for exact round-tripping (e.g., rebuilding a child
// path) even when they are not valid text.
package wintext

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidText indicates a code-unit sequence with no valid string form.
var ErrInvalidText = errors.New("wintext: code units are not valid text")

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	lowSurrogate = 0xDC00
)

// Units slices count 16-bit code units out of raw starting at byte offset
// off, little-endian. When the buffer holds fewer bytes than claimed the
// result is empty rather than an error, matching the permissive short-name
// behavior of the lowest-level records; callers needing strictness must
// check count themselves.
func Units(raw []byte, off int, count uint32) []uint16 {
	n := int(count)
	if n == 0 || off < 0 || off > len(raw) {
		return nil
	}
	if len(raw)-off < n*2 {
		return nil
	}
	return UnitsFromBytes(raw[off : off+n*2])
}

// UnitsFromBytes reinterprets b as little-endian 16-bit code units.
// A trailing odd byte is ignored.
func UnitsFromBytes(b []byte) []uint16 {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])|uint16(b[i+1])<<8)
	}
	return units
}

// StripZero drops every zero code unit, embedded or trailing. The native
// enumeration buffers guarantee no terminator, but values written through
// friendlier APIs usually carry one, and names may legally embed NULs that
// string conversion cannot keep.
func StripZero(units []uint16) []uint16 {
	kept := make([]uint16, 0, len(units))
	for _, u := range units {
		if u != 0 {
			kept = append(kept, u)
		}
	}
	return kept
}

// String converts code units to a Go string, failing on unpaired surrogates
// instead of substituting replacement characters. Zero units pass through;
// strip them first if terminators are unwanted.
func String(units []uint16) (string, error) {
	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < surrogateMin || u > surrogateMax:
			b.WriteRune(rune(u))
		case u < lowSurrogate:
			if i+1 < len(units) && units[i+1] >= lowSurrogate && units[i+1] <= surrogateMax {
				b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
				i++
				continue
			}
			return "", fmt.Errorf("unpaired high surrogate %#04x at unit %d: %w", u, i, ErrInvalidText)
		default:
			return "", fmt.Errorf("stray low surrogate %#04x at unit %d: %w", u, i, ErrInvalidText)
		}
	}
	return b.String(), nil
}

// Encode converts a Go string to code units, no terminator.
func Encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// EncodeTerminated converts a Go string to code units with a trailing NUL,
// the shape the native open/set primitives expect.
func EncodeTerminated(s string) []uint16 {
	units := utf16.Encode([]rune(s))
	return append(units, 0)
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeBytes returns the UTF-16LE byte encoding of s followed by a NUL
// code unit, the payload layout of REG_SZ and REG_EXPAND_SZ values.
func EncodeBytes(s string) ([]byte, error) {
	enc, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("utf-16le encode: %w", err)
	}
	return append(enc, 0, 0), nil
}
