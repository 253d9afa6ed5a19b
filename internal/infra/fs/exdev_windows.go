//go:build windows

package fs

import (
	"errors"
	"os"
	"syscall"
)

// ERROR_NOT_SAME_DEVICE, the Windows counterpart of EXDEV.
const errNotSameDevice = syscall.Errno(0x11)

func isEXDEV(err error) bool {
	if errors.Is(err, errNotSameDevice) {
		return true
	}
	var le *os.LinkError
	if errors.As(err, &le) && errors.Is(le.Err, errNotSameDevice) {
		return true
	}
	return false
}
