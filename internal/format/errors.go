package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrShortRead indicates a fixed field extended past the end of the buffer.
	ErrShortRead = errors.New("format: buffer ends mid-field")
	// ErrDataBounds indicates a data offset/length pair pointed outside the buffer.
	ErrDataBounds = errors.New("format: data region out of bounds")
	// ErrShortData indicates a fixed-width payload had fewer bytes than its type requires.
	ErrShortData = errors.New("format: payload too small for type")
)
