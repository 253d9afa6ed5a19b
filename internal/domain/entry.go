package domain

import (
	"path/filepath"
	"strings"
)

// FileEntry is the per-file view the sorting pipeline works with. It is
// created during enumeration and discarded once the file is processed.
type FileEntry struct {
	Path   string
	Name   string
	Stem   string
	Ext    string // lowercase, no leading dot; "" for extensionless files
	DotExt string // original extension with dot and case, reattached as-is
}

func NewFileEntry(path string) FileEntry {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	// Dotfiles like .bashrc have no extension, despite filepath.Ext.
	if ext == name {
		ext = ""
	}

	return FileEntry{
		Path:   path,
		Name:   name,
		Stem:   strings.TrimSuffix(name, ext),
		Ext:    NormalizeExt(ext),
		DotExt: ext,
	}
}

// NormalizeExt lowercases an extension and strips the leading dot, so
// "JPG", ".jpg" and "jpg" all compare equal.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
