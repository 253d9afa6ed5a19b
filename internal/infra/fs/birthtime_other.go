//go:build !linux && !darwin && !windows

package fs

import "time"

func birthTime(path string) (time.Time, bool, error) {
	return time.Time{}, false, nil
}
