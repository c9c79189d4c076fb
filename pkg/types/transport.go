package types

// Handle is an opaque identifier for an open key issued by the transport.
// The zero value is never a live handle.
type Handle uintptr

// Access selects the intent an open call asks the transport for.
type Access int

const (
	// AccessRead is sufficient for enumeration.
	AccessRead Access = iota
	// AccessWrite additionally permits set and delete operations.
	AccessWrite
)

// Transport is the index-based enumeration surface the host environment
// provides. Implementations are expected to be stateless apart from the
// handles they issue; every method is a direct blocking call.
//
// EnumerateKey and EnumerateValue return the raw self-describing record for
// the entry at index, or ok=false when the index is past the last entry or
// the sizing call failed. The distinction is deliberately not exposed: both
// terminate an enumeration.
type Transport interface {
	// Open resolves an NT object path (e.g. `\Registry\Machine\Software`)
	// to a live handle. Failures are *Error with ErrKindTransport.
	Open(path string, access Access) (Handle, error)

	// Close releases a handle issued by Open.
	Close(h Handle) error

	// EnumerateKey returns the raw KEY_BASIC_INFORMATION record for the
	// subkey at index.
	EnumerateKey(h Handle, index uint32) ([]byte, bool)

	// EnumerateValue returns the raw KEY_VALUE_FULL_INFORMATION record for
	// the value at index.
	EnumerateValue(h Handle, index uint32) ([]byte, bool)

	// DeleteKey removes the key the handle refers to.
	DeleteKey(h Handle) error

	// DeleteValue removes a named value under the key.
	DeleteValue(h Handle, name string) error

	// SetValue creates or replaces a named value with the given type tag
	// and already-encoded payload bytes.
	SetValue(h Handle, name string, typ ValueType, data []byte) error
}
