package regkey

import (
	"github.com/joshuapare/regnt/internal/format"
	"github.com/joshuapare/regnt/internal/wintext"
	"github.com/joshuapare/regnt/pkg/types"
)

// ValueIterator enumerates the values of a key. The same single-pass,
// fail-stop contract as KeyIterator applies: a record that does not decode
// ends the enumeration with the error retained in Err.
type ValueIterator struct {
	t      types.Transport
	ref    *handleRef
	index  uint32
	cur    *ValueItem
	err    error
	done   bool
	closed bool
}

// Next pulls the next value record. It returns false on exhaustion or
// error, and keeps returning false thereafter.
func (it *ValueIterator) Next() bool {
	if it.done {
		return false
	}
	h, err := it.ref.get()
	if err != nil {
		return it.fail(err)
	}
	raw, ok := it.t.EnumerateValue(h, it.index)
	if !ok {
		it.done = true
		it.cur = nil
		return false
	}
	info, err := format.DecodeValueFullInfo(raw)
	if err != nil {
		return it.fail(types.DecodeError("decode value record", err))
	}
	val, err := decodeValue(info, raw)
	if err != nil {
		return it.fail(err)
	}
	// Name units stay raw here; ValueItem.Name converts on demand since
	// some stored names are intentionally not representable as text.
	units := wintext.Units(raw, format.ValueNameOffset, info.NameLength/2)

	it.index++
	it.cur = &ValueItem{name: units, value: val}
	return true
}

func (it *ValueIterator) fail(err error) bool {
	it.err = err
	it.done = true
	it.cur = nil
	return false
}

// Err returns the decode or text-conversion error that terminated the
// enumeration, or nil when it simply ran out of entries.
func (it *ValueIterator) Err() error { return it.err }

// Value returns the record produced by the last successful Next.
func (it *ValueIterator) Value() *ValueItem { return it.cur }

// Close releases the iterator's reference to the shared handle. Safe to call
// more than once.
func (it *ValueIterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.done = true
	if it.ref != nil {
		_ = it.ref.release()
	}
}
