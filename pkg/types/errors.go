package types

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	// ErrKindTransport covers failures reported by the host environment,
	// surfaced verbatim with their NTSTATUS code and never retried here.
	ErrKindTransport ErrKind = iota
	// ErrKindDecode covers structural failures in a record: truncated
	// header, field reads past the buffer, payload bounds violations,
	// undersized fixed-width payloads.
	ErrKindDecode
	// ErrKindText covers code-unit sequences with no valid string form.
	// The raw bytes were extracted successfully; only the conversion failed.
	ErrKindText
	// ErrKindState covers use of a handle after its owner released it.
	ErrKindState
)

// Error is a typed error with an optional underlying cause. Transport errors
// carry the operation, the resource name, and the raw status code so the
// original condition can be reproduced exactly.
type Error struct {
	Kind   ErrKind
	Op     string // operation name, e.g. "open", "set value"
	Path   string // resource name when one exists, e.g. the key path
	Status uint32 // raw NTSTATUS for transport errors
	Err    error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch {
	case e.Kind == ErrKindTransport && e.Path != "":
		msg = fmt.Sprintf("could not %s %s: status 0x%08X", e.Op, e.Path, e.Status)
	case e.Kind == ErrKindTransport:
		msg = fmt.Sprintf("could not %s: status 0x%08X", e.Op, e.Status)
	default:
		msg = e.Op
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// StatusError wraps a raw NTSTATUS from the transport.
func StatusError(op, path string, status uint32) *Error {
	return &Error{Kind: ErrKindTransport, Op: op, Path: path, Status: status}
}

// DecodeError wraps a structural decode failure.
func DecodeError(op string, err error) *Error {
	return &Error{Kind: ErrKindDecode, Op: op, Err: err}
}

// TextError wraps a code-unit-to-string conversion failure.
func TextError(op string, err error) *Error {
	return &Error{Kind: ErrKindText, Op: op, Err: err}
}

// ErrClosed is returned when an operation reaches a handle whose owning
// context has already been closed.
var ErrClosed = &Error{Kind: ErrKindState, Op: "registry handle is closed"}
