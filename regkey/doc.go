// Package regkey exposes a structured, safe view over the binary records
// returned by index-based registry enumeration.
//
// A Key owns one transport handle. Subkeys and Values return single-pass
// iterators that share the handle read-only and decode one record per pull:
//
//	key, err := regkey.Open(tr, `\Registry\Machine\Software\Microsoft\Windows\CurrentVersion`)
//	if err != nil {
//		return err
//	}
//	defer key.Close()
//
//	it := key.Subkeys()
//	defer it.Close()
//	for it.Next() {
//		sub := it.Subkey()
//		fmt.Println(sub.Name())
//	}
//	if err := it.Err(); err != nil {
//		return err // a record failed to decode; enumeration stopped there
//	}
//
// Enumeration is fail-stop: a corrupt record terminates the iterator instead
// of being skipped, so a clean end and a decode failure are distinguishable
// through Err. Mutation (Delete, DeleteValue, SetValue and friends) always
// goes through the key's own handle, never an iterator's shared view.
package regkey
