package snapshot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/joshuapare/regnt/pkg/types"
)

// ErrNotFound indicates the snapshot holds no such key or value.
var ErrNotFound = errors.New("snapshot: not found")

// DB is a read-only view over a previously dumped snapshot.
type DB struct {
	db *bbolt.DB
}

// Open opens an existing snapshot store for reading.
func Open(path string) (*DB, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{
		Timeout:  10 * time.Second,
		ReadOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: open store: %w", err)
	}
	return &DB{db: db}, nil
}

// Close releases the store.
func (d *DB) Close() error { return d.db.Close() }

// Keys lists the captured key paths with the given prefix, in byte order.
// An empty prefix lists everything.
func (d *DB) Keys(prefix string) ([]string, error) {
	var paths []string
	err := d.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			if strings.HasPrefix(string(name), prefix) {
				paths = append(paths, string(name))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Values returns every value captured under one key path.
func (d *DB) Values(path string) (map[string]types.Value, error) {
	out := map[string]types.Value{}
	err := d.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(path))
		if bucket == nil {
			return fmt.Errorf("%w: key %q", ErrNotFound, path)
		}
		return bucket.ForEach(func(name, enc []byte) error {
			rec, err := decodeRecord(enc)
			if err != nil {
				return err
			}
			out[string(name)] = rec.Value()
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Value looks up a single captured value by key path and name.
func (d *DB) Value(path, name string) (types.Value, error) {
	var val types.Value
	err := d.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(path))
		if bucket == nil {
			return fmt.Errorf("%w: key %q", ErrNotFound, path)
		}
		enc := bucket.Get([]byte(name))
		if enc == nil {
			return fmt.Errorf("%w: value %q under %q", ErrNotFound, name, path)
		}
		rec, err := decodeRecord(enc)
		if err != nil {
			return err
		}
		val = rec.Value()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return val, nil
}
