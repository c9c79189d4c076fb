package regkey

import (
	"encoding/binary"

	"github.com/joshuapare/regnt/internal/format"
	"github.com/joshuapare/regnt/internal/wintext"
	"github.com/joshuapare/regnt/pkg/types"
)

// fakeTransport serves canned enumeration records from an in-memory tree of
// NT object paths. It records mutations and counts Close calls so tests can
// assert release-exactly-once behavior.
type fakeTransport struct {
	keys   map[string][][]byte // path -> subkey records, in index order
	values map[string][][]byte // path -> value records, in index order

	openStatus map[string]uint32 // path -> NTSTATUS forced on Open

	handles    map[types.Handle]string
	nextHandle types.Handle
	closes     map[types.Handle]int

	sets    []setCall
	deletes []string // paths passed to DeleteKey
	delVals []string // names passed to DeleteValue
}

type setCall struct {
	name string
	typ  types.ValueType
	data []byte
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		keys:       map[string][][]byte{},
		values:     map[string][][]byte{},
		openStatus: map[string]uint32{},
		handles:    map[types.Handle]string{},
		closes:     map[types.Handle]int{},
	}
}

func (f *fakeTransport) Open(path string, _ types.Access) (types.Handle, error) {
	if status, bad := f.openStatus[path]; bad {
		return 0, types.StatusError("open registry key", path, status)
	}
	f.nextHandle++
	h := f.nextHandle
	f.handles[h] = path
	return h, nil
}

func (f *fakeTransport) Close(h types.Handle) error {
	f.closes[h]++
	return nil
}

func (f *fakeTransport) EnumerateKey(h types.Handle, index uint32) ([]byte, bool) {
	recs := f.keys[f.handles[h]]
	if int(index) >= len(recs) {
		return nil, false
	}
	return recs[index], true
}

func (f *fakeTransport) EnumerateValue(h types.Handle, index uint32) ([]byte, bool) {
	recs := f.values[f.handles[h]]
	if int(index) >= len(recs) {
		return nil, false
	}
	return recs[index], true
}

func (f *fakeTransport) DeleteKey(h types.Handle) error {
	f.deletes = append(f.deletes, f.handles[h])
	return nil
}

func (f *fakeTransport) DeleteValue(_ types.Handle, name string) error {
	f.delVals = append(f.delVals, name)
	return nil
}

func (f *fakeTransport) SetValue(_ types.Handle, name string, typ types.ValueType, data []byte) error {
	f.sets = append(f.sets, setCall{name: name, typ: typ, data: data})
	return nil
}

// keyRecord assembles a KEY_BASIC_INFORMATION buffer for a subkey name.
func keyRecord(name string) []byte {
	return keyRecordAt(name, 0)
}

// keyRecordAt is keyRecord with an explicit last-write FILETIME stamp.
func keyRecordAt(name string, lastWrite uint64) []byte {
	units := wintext.Encode(name)
	buf := make([]byte, format.KeyBasicInfoSize+len(units)*2)
	binary.LittleEndian.PutUint64(buf[format.KeyLastWriteOffset:], lastWrite)
	binary.LittleEndian.PutUint32(buf[format.KeyNameLenOffset:], uint32(len(units)*2))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[format.KeyNameOffset+i*2:], u)
	}
	return buf
}

// valueRecord assembles a KEY_VALUE_FULL_INFORMATION buffer with the payload
// placed directly after the name, as the native call lays it out.
func valueRecord(typ types.ValueType, name string, data []byte) []byte {
	units := wintext.Encode(name)
	dataOff := format.ValueFullInfoSize + len(units)*2
	buf := make([]byte, dataOff+len(data))
	binary.LittleEndian.PutUint32(buf[format.ValueTypeOffset:], uint32(typ))
	binary.LittleEndian.PutUint32(buf[format.ValueDataOffOffset:], uint32(dataOff))
	binary.LittleEndian.PutUint32(buf[format.ValueDataLenOffset:], uint32(len(data)))
	binary.LittleEndian.PutUint32(buf[format.ValueNameLenOffset:], uint32(len(units)*2))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[format.ValueNameOffset+i*2:], u)
	}
	copy(buf[dataOff:], data)
	return buf
}
