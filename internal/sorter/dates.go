package sorter

import (
	"time"

	"sortery/internal/domain"
)

// resolveDate produces the calendar time that seeds the destination name,
// in local time. For DateCreated, a birth timestamp that is missing or
// unreadable (statx may fail with ENOSYS or EPERM even when stat works)
// falls back to the modification time; the returned warning makes the
// substitution observable instead of silent. A file only fails here when
// the stat itself fails, so neither timestamp can be read.
func resolveDate(fsys FileSystem, entry domain.FileEntry, dateType domain.DateType) (t time.Time, warning string, err error) {
	info, err := fsys.Stat(entry.Path)
	if err != nil {
		return time.Time{}, "", err
	}

	if dateType == domain.DateCreated {
		created, ok, ctErr := fsys.CreationTime(entry.Path)
		if ctErr == nil && ok {
			return created.Local(), "", nil
		}
		warning = "creation time not available for " + entry.Name + ", using modification time"
	}

	return info.ModTime().Local(), warning, nil
}
