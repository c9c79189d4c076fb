//go:build windows

package ntdll

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regnt/pkg/types"
)

var (
	modntdll = windows.NewLazySystemDLL("ntdll.dll")

	procNtOpenKey           = modntdll.NewProc("NtOpenKey")
	procNtClose             = modntdll.NewProc("NtClose")
	procNtEnumerateKey      = modntdll.NewProc("NtEnumerateKey")
	procNtEnumerateValueKey = modntdll.NewProc("NtEnumerateValueKey")
	procNtDeleteKey         = modntdll.NewProc("NtDeleteKey")
	procNtDeleteValueKey    = modntdll.NewProc("NtDeleteValueKey")
	procNtSetValueKey       = modntdll.NewProc("NtSetValueKey")
)

const (
	// KeyBasicInformation / KeyValueFullInformation info classes select the
	// record shapes the decoders in internal/format understand.
	keyBasicInformation     = 0
	keyValueFullInformation = 1

	statusSuccess = 0
)

type transport struct{}

// New returns the ntdll-backed transport.
func New() types.Transport { return transport{} }

func (transport) Open(path string, access types.Access) (types.Handle, error) {
	name, err := windows.NewNTUnicodeString(path)
	if err != nil {
		return 0, &types.Error{Kind: types.ErrKindTransport, Op: "encode key path", Path: path, Err: err}
	}

	oa := windows.OBJECT_ATTRIBUTES{
		ObjectName: name,
		Attributes: windows.OBJ_CASE_INSENSITIVE,
	}
	oa.Length = uint32(unsafe.Sizeof(oa))

	mask := uintptr(windows.KEY_READ)
	if access == types.AccessWrite {
		mask = uintptr(windows.KEY_ALL_ACCESS)
	}

	var h uintptr
	status, _, _ := procNtOpenKey.Call(
		uintptr(unsafe.Pointer(&h)),
		mask,
		uintptr(unsafe.Pointer(&oa)),
	)
	if status != statusSuccess {
		return 0, types.StatusError("open registry key", path, uint32(status))
	}
	return types.Handle(h), nil
}

func (transport) Close(h types.Handle) error {
	status, _, _ := procNtClose.Call(uintptr(h))
	if status != statusSuccess {
		return types.StatusError("close registry key", "", uint32(status))
	}
	return nil
}

// enumerate performs the two-call size-then-fill pattern the Nt enumeration
// services require: the first call with an empty buffer reports the needed
// length, the second fills it. Any failure, including the sizing call coming
// back empty, reads as exhaustion.
func enumerate(proc *windows.LazyProc, infoClass uintptr, h types.Handle, index uint32) ([]byte, bool) {
	var resultLen uint32
	_, _, _ = proc.Call(
		uintptr(h),
		uintptr(index),
		infoClass,
		0,
		0,
		uintptr(unsafe.Pointer(&resultLen)),
	)
	if resultLen == 0 {
		return nil, false
	}

	buf := make([]byte, resultLen)
	status, _, _ := proc.Call(
		uintptr(h),
		uintptr(index),
		infoClass,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&resultLen)),
	)
	if status != statusSuccess {
		return nil, false
	}
	return buf, true
}

func (transport) EnumerateKey(h types.Handle, index uint32) ([]byte, bool) {
	return enumerate(procNtEnumerateKey, keyBasicInformation, h, index)
}

func (transport) EnumerateValue(h types.Handle, index uint32) ([]byte, bool) {
	return enumerate(procNtEnumerateValueKey, keyValueFullInformation, h, index)
}

func (transport) DeleteKey(h types.Handle) error {
	status, _, _ := procNtDeleteKey.Call(uintptr(h))
	if status != statusSuccess {
		return types.StatusError("delete registry key", "", uint32(status))
	}
	return nil
}

func (transport) DeleteValue(h types.Handle, name string) error {
	uname, err := windows.NewNTUnicodeString(name)
	if err != nil {
		return &types.Error{Kind: types.ErrKindTransport, Op: "encode value name", Path: name, Err: err}
	}
	status, _, _ := procNtDeleteValueKey.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(uname)),
	)
	if status != statusSuccess {
		return types.StatusError("delete registry value", name, uint32(status))
	}
	return nil
}

func (transport) SetValue(h types.Handle, name string, typ types.ValueType, data []byte) error {
	uname, err := windows.NewNTUnicodeString(name)
	if err != nil {
		return &types.Error{Kind: types.ErrKindTransport, Op: "encode value name", Path: name, Err: err}
	}
	var dataPtr unsafe.Pointer
	if len(data) > 0 {
		dataPtr = unsafe.Pointer(&data[0])
	}
	status, _, _ := procNtSetValueKey.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(uname)),
		0, // TitleIndex, ignored by the kernel
		uintptr(typ),
		uintptr(dataPtr),
		uintptr(len(data)),
	)
	if status != statusSuccess {
		return types.StatusError("set registry value", name, uint32(status))
	}
	return nil
}
