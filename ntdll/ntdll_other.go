//go:build !windows

package ntdll

import (
	"errors"

	"github.com/joshuapare/regnt/pkg/types"
)

// ErrUnsupportedPlatform is returned by every call on non-Windows hosts.
var ErrUnsupportedPlatform = errors.New("ntdll: native registry transport requires windows")

type transport struct{}

// New returns a transport whose operations fail with ErrUnsupportedPlatform.
func New() types.Transport { return transport{} }

func unsupported(op string) error {
	return &types.Error{Kind: types.ErrKindTransport, Op: op, Err: ErrUnsupportedPlatform}
}

func (transport) Open(path string, _ types.Access) (types.Handle, error) {
	return 0, unsupported("open registry key")
}

func (transport) Close(types.Handle) error { return unsupported("close registry key") }

func (transport) EnumerateKey(types.Handle, uint32) ([]byte, bool) { return nil, false }

func (transport) EnumerateValue(types.Handle, uint32) ([]byte, bool) { return nil, false }

func (transport) DeleteKey(types.Handle) error { return unsupported("delete registry key") }

func (transport) DeleteValue(types.Handle, string) error {
	return unsupported("delete registry value")
}

func (transport) SetValue(types.Handle, string, types.ValueType, []byte) error {
	return unsupported("set registry value")
}
