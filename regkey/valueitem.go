package regkey

import (
	"github.com/joshuapare/regnt/internal/wintext"
	"github.com/joshuapare/regnt/pkg/types"
)

// ValueItem is one decoded value record: the raw name code units and the
// typed payload. Items are immutable once produced by an iterator.
type ValueItem struct {
	name  []uint16
	value types.Value
}

// Name converts the stored name code units to text. Conversion happens on
// demand because the native API permits names with no valid string form;
// use NameUnits when the exact units matter.
func (v *ValueItem) Name() (string, error) {
	s, err := wintext.String(wintext.StripZero(v.name))
	if err != nil {
		return "", types.TextError("convert value name", err)
	}
	return s, nil
}

// NameUnits returns a copy of the raw name code units, embedded NULs and
// all, for lossless round-tripping.
func (v *ValueItem) NameUnits() []uint16 {
	return append([]uint16(nil), v.name...)
}

// Value returns the decoded payload. Binary payloads are owned copies,
// detached from the enumeration buffer they were decoded from.
func (v *ValueItem) Value() types.Value { return v.value }

// String renders the value name, or a placeholder when the name has no
// text form.
func (v *ValueItem) String() string {
	s, err := v.Name()
	if err != nil {
		return "?"
	}
	return s
}
