package sorter

// Eligible decides whether a file with the given (normalized) extension
// passes the configured type filters. A non-empty only set decides on its
// own and the exclude set is ignored entirely, not merged. With no filters
// every file is eligible, including extensionless ones (ext == "").
func Eligible(ext string, only, exclude map[string]bool) bool {
	if len(only) > 0 {
		return only[ext]
	}
	if len(exclude) > 0 {
		return !exclude[ext]
	}
	return true
}
