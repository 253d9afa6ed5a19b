package sorter

import (
	"io/fs"
	"time"
)

// FileSystem is the capability contract the sorter consumes. The core never
// touches the os package directly; cmd wires in the real adapter from
// internal/infra/fs and tests substitute a mock.
type FileSystem interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	// Move relocates a file. On the same volume it must be atomic; across
	// volumes it must not lose data if the copy fails partway.
	Move(src, dst string) error
	// CreationTime reports the file's birth timestamp, and whether the
	// platform exposes one at all.
	CreationTime(path string) (time.Time, bool, error)
}

// ProgressFunc is called after each processed file with the file's name,
// so progress displays can show what was just handled.
type ProgressFunc func(current, total int, name string)
