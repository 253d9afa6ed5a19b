package domain

// FailureKind classifies a per-file failure in the report. Every kind here
// is recoverable: the run continues with the next file.
type FailureKind string

const (
	FailMetadataUnavailable FailureKind = "metadata_unavailable"
	FailCollisionExhausted  FailureKind = "collision_exhausted"
	FailMove                FailureKind = "move_failed"
	FailDirCreate           FailureKind = "dir_create_failed"
)

// Move records one resolved source → destination decision.
type Move struct {
	From string
	To   string
}

// Failure records one file the run could not sort.
type Failure struct {
	Path string
	Kind FailureKind
	Err  error
}

// SortReport is the outcome of one sorting run. Moved and Planned are
// mutually exclusive: a dry run only plans, a real run only moves.
type SortReport struct {
	Eligible int
	Skipped  int
	Moved    int
	Planned  int
	Failed   int

	Moves    []Move
	Failures []Failure
	Warnings []string
}

// Clean reports whether every eligible file was sorted (or planned)
// without a per-file failure.
func (r SortReport) Clean() bool {
	return r.Failed == 0
}
