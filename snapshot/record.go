// Package snapshot captures a registry subtree into an offline bbolt store
// for later inspection. Each key becomes one bucket named by its NT object
// path; each value becomes one msgpack-encoded record under its name. A
// snapshot is a write-once export, not a cache: nothing ever reads through
// to the live registry.
package snapshot

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/joshuapare/regnt/pkg/types"
)

// Record is the stored form of one decoded registry value. Exactly one of
// the payload fields is meaningful, selected by Type.
type Record struct {
	Type   uint32 `msgpack:"type"`
	Str    string `msgpack:"str,omitempty"`
	Dword  uint32 `msgpack:"dw,omitempty"`
	Qword  uint64 `msgpack:"qw,omitempty"`
	Binary []byte `msgpack:"bin,omitempty"`
}

func fromValue(v types.Value) Record {
	switch v := v.(type) {
	case types.None:
		return Record{Type: uint32(types.REG_NONE)}
	case types.String:
		return Record{Type: uint32(types.REG_SZ), Str: string(v)}
	case types.Dword:
		return Record{Type: uint32(types.REG_DWORD), Dword: uint32(v)}
	case types.Qword:
		return Record{Type: uint32(types.REG_QWORD), Qword: uint64(v)}
	case types.Binary:
		return Record{Type: uint32(types.REG_BINARY), Binary: []byte(v)}
	case types.Unknown:
		return Record{Type: uint32(v.Type)}
	default:
		return Record{Type: uint32(types.REG_NONE)}
	}
}

// Value rebuilds the decoded form stored in the record.
func (r Record) Value() types.Value {
	switch typ := types.ValueType(r.Type); typ {
	case types.REG_NONE:
		return types.None{}
	case types.REG_SZ, types.REG_EXPAND_SZ:
		return types.String(r.Str)
	case types.REG_DWORD, types.REG_DWORD_BIG_ENDIAN:
		return types.Dword(r.Dword)
	case types.REG_QWORD:
		return types.Qword(r.Qword)
	case types.REG_BINARY:
		return types.Binary(r.Binary)
	default:
		return types.Unknown{Type: typ}
	}
}

func (r Record) encode() ([]byte, error) {
	enc, err := msgpack.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode record: %w", err)
	}
	return enc, nil
}

func decodeRecord(b []byte) (Record, error) {
	var r Record
	if err := msgpack.Unmarshal(b, &r); err != nil {
		return Record{}, fmt.Errorf("snapshot: decode record: %w", err)
	}
	return r, nil
}
