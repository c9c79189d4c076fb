package regkey

import (
	"github.com/joshuapare/regnt/internal/format"
	"github.com/joshuapare/regnt/internal/wintext"
	"github.com/joshuapare/regnt/pkg/types"
)

// KeyIterator enumerates the direct subkeys of a key, one transport call per
// pull. It is single-pass and not restartable: the cursor only advances, and
// once the transport reports no more entries — or any record fails to decode
// — the iterator is exhausted for good. A decode failure terminates the
// enumeration rather than skipping the record; Err distinguishes the two.
type KeyIterator struct {
	t      types.Transport
	ref    *handleRef
	parent []uint16
	index  uint32
	cur    *Subkey
	err    error
	done   bool
	closed bool
}

// Next pulls the next subkey record. It returns false on exhaustion or
// error, and keeps returning false thereafter.
func (it *KeyIterator) Next() bool {
	if it.done {
		return false
	}
	h, err := it.ref.get()
	if err != nil {
		return it.fail(err)
	}
	raw, ok := it.t.EnumerateKey(h, it.index)
	if !ok {
		it.done = true
		it.cur = nil
		return false
	}
	info, err := format.DecodeKeyBasicInfo(raw)
	if err != nil {
		return it.fail(types.DecodeError("decode subkey record", err))
	}
	units := wintext.Units(raw, format.KeyNameOffset, info.NameLength/2)
	name, err := wintext.String(wintext.StripZero(units))
	if err != nil {
		return it.fail(types.TextError("convert subkey name", err))
	}

	it.index++
	it.cur = &Subkey{t: it.t, name: name, parent: it.parent, lastWrite: info.LastWriteTime}
	return true
}

func (it *KeyIterator) fail(err error) bool {
	it.err = err
	it.done = true
	it.cur = nil
	return false
}

// Err returns the decode or text-conversion error that terminated the
// enumeration, or nil when it simply ran out of entries.
func (it *KeyIterator) Err() error { return it.err }

// Subkey returns the record produced by the last successful Next.
func (it *KeyIterator) Subkey() *Subkey { return it.cur }

// Close releases the iterator's reference to the shared handle. Safe to call
// more than once.
func (it *KeyIterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.done = true
	if it.ref != nil {
		_ = it.ref.release()
	}
}
