package sorter

import (
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// fallbackPattern is used when the configured date format is empty or does
// not compile: a deterministic four-digit year beats failing the run.
const fallbackPattern = "%Y"

// nameSeparator joins the formatted date and the preserved original stem,
// so "vacation.png" dated 2021 under "%Y" becomes "2021-vacation.png".
const nameSeparator = "-"

// nameFormatter renders the strftime date pattern into the destination
// folder name and file stem. It is compiled once per run.
type nameFormatter struct {
	pattern *strftime.Strftime
}

// newNameFormatter compiles pattern, falling back to fallbackPattern when
// the pattern is empty or invalid. fellBack reports that substitution.
func newNameFormatter(pattern string) (f nameFormatter, fellBack bool) {
	if pattern != "" {
		if compiled, err := strftime.New(pattern); err == nil {
			return nameFormatter{pattern: compiled}, false
		}
	}
	compiled, err := strftime.New(fallbackPattern)
	if err != nil {
		// fallbackPattern is a constant that always compiles.
		panic(err)
	}
	return nameFormatter{pattern: compiled}, true
}

// Format returns the destination folder name and file stem for a file
// dated t. A pattern containing path separators nests destination folders;
// the stem is always a single path element. The extension is reattached by
// the caller, case preserved.
func (f nameFormatter) Format(t time.Time, originalStem string, preserveName bool) (folder, stem string) {
	formatted := f.pattern.FormatString(t)

	folder = formatted
	stem = flatten(formatted)
	if preserveName {
		stem = stem + nameSeparator + originalStem
	}
	return folder, stem
}

// flatten keeps a formatted date usable as a file name even when the
// pattern nests folders.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "/", nameSeparator)
	return strings.ReplaceAll(s, "\\", nameSeparator)
}
