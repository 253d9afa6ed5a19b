package domain

import "fmt"

// DateType selects which filesystem timestamp seeds the destination name.
type DateType string

const (
	DateModified DateType = "m"
	DateCreated  DateType = "c"
)

// ParseDateType validates the two-character date type code.
func ParseDateType(code string) (DateType, error) {
	switch DateType(code) {
	case DateModified, DateCreated:
		return DateType(code), nil
	default:
		return "", fmt.Errorf("unknown date type %q (must be \"m\" or \"c\")", code)
	}
}

// SortConfig is the immutable input of one sorting run.
type SortConfig struct {
	Source       string
	Target       string
	DateFormat   string
	DateType     DateType
	PreserveName bool
	ExcludeType  map[string]bool
	OnlyType     map[string]bool
}

// ExtSet builds a lookup set from a list of extensions, normalizing each
// entry the same way file extensions are normalized.
func ExtSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[NormalizeExt(ext)] = true
	}
	return set
}
