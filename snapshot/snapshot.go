package snapshot

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"

	"github.com/joshuapare/regnt/pkg/types"
	"github.com/joshuapare/regnt/regkey"
)

// Options controls a Dump.
type Options struct {
	// Logger receives per-key progress at debug level. Nil discards.
	Logger *slog.Logger

	// MaxDepth limits recursion below the root key; 0 means unlimited.
	MaxDepth int
}

// Stats summarizes what a Dump captured.
type Stats struct {
	Keys   int
	Values int
}

// Dump walks the subtree rooted at rootPath through the enumeration
// iterators and writes it to a new bbolt store at dbPath. The walk inherits
// the library's fail-stop semantics: a record that does not decode, or a
// name with no text form, aborts the dump with that error rather than
// silently omitting entries.
func Dump(t types.Transport, rootPath, dbPath string, opts Options) (*Stats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 10 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("snapshot: open store: %w", err)
	}
	defer db.Close()

	stats := &Stats{}
	err = db.Update(func(tx *bbolt.Tx) error {
		return dumpKey(tx, t, rootPath, 1, opts.MaxDepth, stats, logger)
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func dumpKey(tx *bbolt.Tx, t types.Transport, path string, depth, maxDepth int, stats *Stats, logger *slog.Logger) error {
	key, err := regkey.Open(t, path)
	if err != nil {
		return err
	}
	defer key.Close()

	bucket, err := tx.CreateBucketIfNotExists([]byte(path))
	if err != nil {
		return fmt.Errorf("snapshot: bucket %q: %w", path, err)
	}

	vit := key.Values()
	defer vit.Close()
	for vit.Next() {
		item := vit.Value()
		name, err := item.Name()
		if err != nil {
			return err
		}
		enc, err := fromValue(item.Value()).encode()
		if err != nil {
			return err
		}
		if err := bucket.Put([]byte(name), enc); err != nil {
			return fmt.Errorf("snapshot: store %q/%q: %w", path, name, err)
		}
		stats.Values++
	}
	if err := vit.Err(); err != nil {
		return err
	}

	stats.Keys++
	logger.Debug("captured key", "path", path, "depth", depth)

	if maxDepth > 0 && depth >= maxDepth {
		return nil
	}

	kit := key.Subkeys()
	defer kit.Close()
	for kit.Next() {
		childPath, err := kit.Subkey().Path()
		if err != nil {
			return err
		}
		if err := dumpKey(tx, t, childPath, depth+1, maxDepth, stats, logger); err != nil {
			return err
		}
	}
	return kit.Err()
}
