//go:build windows

package clipboard

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// htmlFormatName is the registered clipboard format rich UI tools use for
// HTML payloads.
const htmlFormatName = "HTML Format"

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClipboardFormatW = user32.NewProc("RegisterClipboardFormatW")
	procOpenClipboard            = user32.NewProc("OpenClipboard")
	procCloseClipboard           = user32.NewProc("CloseClipboard")
	procGetClipboardData         = user32.NewProc("GetClipboardData")

	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
)

// ReadHTML returns the "HTML Format" clipboard payload, if present. Every
// failure reports absence rather than an error: a clipboard without the
// format is the normal case, not a fault. The clipboard and the global
// memory handle are released on all paths so the system clipboard is
// never left locked.
func (System) ReadHTML() (string, bool) {
	name, err := windows.UTF16PtrFromString(htmlFormatName)
	if err != nil {
		return "", false
	}
	format, _, _ := procRegisterClipboardFormatW.Call(uintptr(unsafe.Pointer(name)))
	if format == 0 {
		return "", false
	}

	if opened, _, _ := procOpenClipboard.Call(0); opened == 0 {
		return "", false
	}
	defer procCloseClipboard.Call() //nolint:errcheck

	handle, _, _ := procGetClipboardData.Call(format)
	if handle == 0 {
		return "", false
	}
	size, _, _ := procGlobalSize.Call(handle)
	if size == 0 {
		return "", false
	}
	ptr, _, _ := procGlobalLock.Call(handle)
	if ptr == 0 {
		return "", false
	}
	defer procGlobalUnlock.Call(handle) //nolint:errcheck

	// Copy out while the handle is locked. The payload is UTF-8 with
	// trailing NUL padding from the global allocation.
	data := string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
	return strings.TrimRight(data, "\x00"), true
}
