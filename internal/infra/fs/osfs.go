package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
)

// Replaceable so tests can simulate EXDEV and move failures reliably.
var renameFunc = os.Rename

// OSFS is the real-filesystem adapter behind the sorter's FileSystem port.
type OSFS struct{}

func (OSFS) ReadDir(dir string) ([]fs.DirEntry, error) {
	return os.ReadDir(dir)
}

func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CreationTime reports the file's birth timestamp where the platform
// exposes one. ok is false on filesystems and platforms without it.
func (OSFS) CreationTime(path string) (time.Time, bool, error) {
	return birthTime(path)
}

// Move renames src to dst. Within one volume the rename is atomic. Across
// volumes it copies and only deletes the source after the copy is verified
// complete; a partial destination is removed on failure so a mid-copy
// crash never leaves a truncated file behind.
func (OSFS) Move(src, dst string) error {
	err := renameFunc(src, dst)
	if err == nil {
		return nil
	}
	if !isEXDEV(err) {
		return err
	}
	return copyThenDelete(src, dst)
}

func copyThenDelete(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	// O_EXCL: the destination was resolved collision-free; anything already
	// there means a concurrent writer won the name.
	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	written, err := io.Copy(dstFile, srcFile)
	if err == nil {
		err = dstFile.Sync()
	}
	if closeErr := dstFile.Close(); err == nil {
		err = closeErr
	}
	if err == nil && written != info.Size() {
		err = fmt.Errorf("short copy: wrote %d of %d bytes", written, info.Size())
	}
	if err != nil {
		_ = os.Remove(dst)
		return err
	}

	return os.Remove(src)
}
