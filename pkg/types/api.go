// Package types defines the public vocabulary of the module: registry value
// types, the decoded value sum type, the transport consumed from the host
// environment, and the error taxonomy.
package types

import "fmt"

// ValueType enumerates Windows registry value types.
// (The numbers align with Windows definitions.)
type ValueType uint32

const (
	REG_NONE                       ValueType = 0
	REG_SZ                         ValueType = 1
	REG_EXPAND_SZ                  ValueType = 2
	REG_BINARY                     ValueType = 3
	REG_DWORD                      ValueType = 4
	REG_DWORD_BIG_ENDIAN           ValueType = 5
	REG_LINK                       ValueType = 6
	REG_MULTI_SZ                   ValueType = 7
	REG_RESOURCE_LIST              ValueType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   ValueType = 9
	REG_RESOURCE_REQUIREMENTS_LIST ValueType = 10
	REG_QWORD                      ValueType = 11
)

// String implements the Stringer interface for ValueType.
func (t ValueType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BIG_ENDIAN:
		return "REG_DWORD_BIG_ENDIAN"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// Known reports whether t names a recognized registry type. Unrecognized
// tags are valid input; they decode to Unknown rather than erroring.
func (t ValueType) Known() bool {
	return t <= REG_QWORD
}

// Value is the decoded payload of one registry value: exactly one of None,
// String, Dword, Qword, Binary, or Unknown. The set is closed; external
// packages cannot add variants.
type Value interface {
	fmt.Stringer
	isValue()
}

// None is the payload of a REG_NONE value.
type None struct{}

// String is a decoded REG_SZ or REG_EXPAND_SZ payload.
type String string

// Dword is a decoded 32-bit numeric payload. Both REG_DWORD and
// REG_DWORD_BIG_ENDIAN produce this variant; the tag only selects the
// byte order used while decoding.
type Dword uint32

// Qword is a decoded REG_QWORD payload.
type Qword uint64

// Binary is a verbatim copy of a REG_BINARY payload. Zero length is valid.
type Binary []byte

// Unknown is the payload of a value whose type tag has no decode rule.
// The raw tag is preserved for display and round-tripping.
type Unknown struct {
	Type ValueType
}

func (None) isValue()    {}
func (String) isValue()  {}
func (Dword) isValue()   {}
func (Qword) isValue()   {}
func (Binary) isValue()  {}
func (Unknown) isValue() {}

func (None) String() string      { return "?(REG_NONE)" }
func (v String) String() string  { return string(v) }
func (v Dword) String() string   { return fmt.Sprintf("%d", uint32(v)) }
func (v Qword) String() string   { return fmt.Sprintf("%d", uint64(v)) }
func (v Binary) String() string  { return fmt.Sprintf("%v", []byte(v)) }
func (v Unknown) String() string { return fmt.Sprintf("?(%s)", v.Type) }
