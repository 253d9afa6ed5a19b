//go:build darwin

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
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false, nil
	}
	ts := stat.Birthtimespec
	return time.Unix(ts.Sec, ts.Nsec), true, nil
}
