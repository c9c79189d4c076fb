// Package ntdll implements the types.Transport interface over the native NT
// registry services in ntdll.dll. Unlike the Win32 registry API, the native
// layer addresses keys by NT object path (e.g. `\Registry\Machine\Software`)
// and can see names containing embedded NULs that the friendly APIs cannot
// represent, which is the point of going in at this level.
//
// The implementation is Windows-only; on other platforms New returns a
// transport whose calls fail with an unsupported-platform error so that
// cross-platform tooling can still link against it.
package ntdll
