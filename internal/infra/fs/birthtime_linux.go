//go:build linux

package fs

import (
	"time"

	"golang.org/x/sys/unix"
)

// Linux only surfaces the birth timestamp through statx, and only on
// filesystems that record one.
func birthTime(path string) (time.Time, bool, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, false, err
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false, nil
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true, nil
}
