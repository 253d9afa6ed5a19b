//go:build windows

package fs

import (
	"os"
	"syscall"
	"time"
)

func birthTime(path string) (time.Time, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false, err
	}
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false, nil
	}
	return time.Unix(0, attrs.CreationTime.Nanoseconds()), true, nil
}
