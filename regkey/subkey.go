package regkey

import (
	"time"

	"github.com/joshuapare/regnt/internal/format"
	"github.com/joshuapare/regnt/internal/wintext"
	"github.com/joshuapare/regnt/pkg/types"
)

// Subkey describes one child key produced by a KeyIterator. It holds the
// decoded child name and the parent's path code units, enough to rebuild
// `parent\child` and open the child as its own Key with a fresh handle.
type Subkey struct {
	t         types.Transport
	name      string
	parent    []uint16 // parent's NUL-terminated path units, owned by the parent Key
	lastWrite uint64   // raw FILETIME from the enumeration record
}

// Name returns the decoded child key name.
func (s *Subkey) Name() string { return s.name }

// LastWrite returns the key's last-write time as reported by the
// enumeration record.
func (s *Subkey) LastWrite() time.Time { return format.FiletimeToTime(s.lastWrite) }

// Path reconstructs the child's full NT object path from the parent's
// stored code units. It fails when the parent units are not valid text.
func (s *Subkey) Path() (string, error) {
	units := s.parent
	if n := len(units); n > 0 && units[n-1] == 0 {
		units = units[:n-1]
	}
	parent, err := wintext.String(units)
	if err != nil {
		return "", types.TextError("convert parent path", err)
	}
	return parent + `\` + s.name, nil
}

// Open opens the subkey for read access under a new, independent handle.
// Outstanding iterators on the parent are unaffected.
func (s *Subkey) Open() (*Key, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	return Open(s.t, path)
}

// OpenWrite opens the subkey with read-write intent.
func (s *Subkey) OpenWrite() (*Key, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	return OpenWrite(s.t, path)
}

func (s *Subkey) String() string { return s.name }
