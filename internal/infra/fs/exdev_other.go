//go:build !unix && !windows

package fs

func isEXDEV(err error) bool {
	return false
}
