package regkey

import (
	"github.com/joshuapare/regnt/internal/format"
	"github.com/joshuapare/regnt/internal/wintext"
	"github.com/joshuapare/regnt/pkg/types"
)

// Key is an open registry key: the entry point for enumeration and the sole
// owner of its transport handle. Iterators and subkey descriptors derived
// from a Key share the handle read-only; Close tears it down once the last
// of them is done with it.
type Key struct {
	t      types.Transport
	ref    *handleRef
	path   []uint16 // NT object path as NUL-terminated code units
	closed bool
}

// Open opens a registry key by its NT object path for read access.
//
//	key, err := regkey.Open(tr, `\Registry\Machine\Software\Microsoft\Windows\CurrentVersion`)
func Open(t types.Transport, path string) (*Key, error) {
	return open(t, path, types.AccessRead)
}

// OpenWrite opens a registry key with read-write intent, as required by
// Delete, DeleteValue, and the Set family.
func OpenWrite(t types.Transport, path string) (*Key, error) {
	return open(t, path, types.AccessWrite)
}

func open(t types.Transport, path string, access types.Access) (*Key, error) {
	h, err := t.Open(path, access)
	if err != nil {
		return nil, err
	}
	return &Key{
		t:    t,
		ref:  newHandleRef(t, h),
		path: wintext.EncodeTerminated(path),
	}, nil
}

// Path returns the NT object path the key was opened with.
func (k *Key) Path() string {
	s, err := wintext.String(wintext.StripZero(k.path))
	if err != nil {
		// The path came in as a string; its units always convert back.
		return ""
	}
	return s
}

// Close drops the key's reference to its handle. Outstanding iterators keep
// the transport handle alive until they are closed too. Close is idempotent.
func (k *Key) Close() error {
	if k.closed {
		return nil
	}
	k.closed = true
	return k.ref.release()
}

// Subkeys returns a single-pass iterator over the key's direct children.
// The iterator shares this key's handle; close it when done.
func (k *Key) Subkeys() *KeyIterator {
	if k.closed {
		return &KeyIterator{err: types.ErrClosed, done: true, closed: true}
	}
	return &KeyIterator{t: k.t, ref: k.ref.retain(), parent: k.path}
}

// Values returns a single-pass iterator over the key's values.
// The iterator shares this key's handle; close it when done.
func (k *Key) Values() *ValueIterator {
	if k.closed {
		return &ValueIterator{err: types.ErrClosed, done: true, closed: true}
	}
	return &ValueIterator{t: k.t, ref: k.ref.retain()}
}

// Delete removes the key itself. Requires a key opened with OpenWrite.
func (k *Key) Delete() error {
	h, err := k.ref.get()
	if err != nil {
		return err
	}
	return k.t.DeleteKey(h)
}

// DeleteValue removes the named value under the key.
func (k *Key) DeleteValue(name string) error {
	h, err := k.ref.get()
	if err != nil {
		return err
	}
	return k.t.DeleteValue(h, name)
}

// SetValue creates or replaces a named value with an already-encoded payload.
func (k *Key) SetValue(name string, typ types.ValueType, data []byte) error {
	h, err := k.ref.get()
	if err != nil {
		return err
	}
	return k.t.SetValue(h, name, typ, data)
}

// SetDword writes a REG_DWORD value.
func (k *Key) SetDword(name string, v uint32) error {
	buf := make([]byte, format.DWORDSize)
	format.PutU32(buf, 0, v)
	return k.SetValue(name, types.REG_DWORD, buf)
}

// SetQword writes a REG_QWORD value.
func (k *Key) SetQword(name string, v uint64) error {
	buf := make([]byte, format.QWORDSize)
	format.PutU64(buf, 0, v)
	return k.SetValue(name, types.REG_QWORD, buf)
}

// SetString writes a REG_SZ value as NUL-terminated UTF-16LE.
func (k *Key) SetString(name, s string) error {
	data, err := wintext.EncodeBytes(s)
	if err != nil {
		return types.TextError("encode string value", err)
	}
	return k.SetValue(name, types.REG_SZ, data)
}

// SetExpandString writes a REG_EXPAND_SZ value as NUL-terminated UTF-16LE.
func (k *Key) SetExpandString(name, s string) error {
	data, err := wintext.EncodeBytes(s)
	if err != nil {
		return types.TextError("encode string value", err)
	}
	return k.SetValue(name, types.REG_EXPAND_SZ, data)
}
