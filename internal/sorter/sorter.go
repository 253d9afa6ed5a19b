package sorter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"sortery/internal/domain"
	"sortery/internal/logging"
)

// Sorter moves files from a source directory into date-derived subfolders
// of a target directory. It processes files strictly one at a time and
// never aborts the run for a per-file failure.
type Sorter struct {
	FS         FileSystem
	Logger     logging.Logger
	OnProgress ProgressFunc
}

// Sort runs one sorting pass. Configuration problems (missing source,
// source not a directory, bad date type) fail before any file is touched;
// everything else is captured per file in the report. With dryRun set the
// exact same classification, naming and collision decisions are made, but
// nothing on disk changes.
func (s *Sorter) Sort(ctx context.Context, cfg domain.SortConfig, dryRun bool) (domain.SortReport, error) {
	if s.FS == nil {
		return domain.SortReport{}, errors.New("sorter requires FS")
	}
	if err := s.validate(cfg); err != nil {
		return domain.SortReport{}, err
	}

	stop := s.Logger.Measure("Sorting files")
	defer stop()

	entries, err := s.enumerate(cfg.Source)
	if err != nil {
		return domain.SortReport{}, err
	}
	s.Logger.Verbosef("Found %d files in %s", len(entries), cfg.Source)

	formatter, fellBack := newNameFormatter(cfg.DateFormat)
	report := domain.SortReport{}
	if fellBack {
		warning := fmt.Sprintf("invalid date format %q, falling back to %q", cfg.DateFormat, fallbackPattern)
		s.Logger.Warnf("%s", warning)
		report.Warnings = append(report.Warnings, warning)
	}

	collisions := newCollisionResolver(s.FS)
	total := len(entries)

	for i, entry := range entries {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		s.sortOne(entry, cfg, dryRun, formatter, collisions, &report)

		if s.OnProgress != nil {
			s.OnProgress(i+1, total, entry.Name)
		}
	}

	s.Logger.Verbosef("Sorted %d files (%d planned, %d skipped, %d failed)",
		report.Moved, report.Planned, report.Skipped, report.Failed)
	return report, nil
}

func (s *Sorter) sortOne(entry domain.FileEntry, cfg domain.SortConfig, dryRun bool, formatter nameFormatter, collisions *collisionResolver, report *domain.SortReport) {
	if !Eligible(entry.Ext, cfg.OnlyType, cfg.ExcludeType) {
		report.Skipped++
		return
	}
	report.Eligible++

	date, warning, err := resolveDate(s.FS, entry, cfg.DateType)
	if err != nil {
		s.fail(report, entry.Path, domain.FailMetadataUnavailable, err)
		return
	}
	if warning != "" {
		s.Logger.Warnf("%s", warning)
		report.Warnings = append(report.Warnings, warning)
	}

	folder, stem := formatter.Format(date, entry.Stem, cfg.PreserveName)
	// Reattach the extension untouched; only filter comparisons lowercase it.
	name := stem + entry.DotExt
	destDir := filepath.Join(cfg.Target, filepath.FromSlash(folder))

	if !dryRun {
		if err := s.FS.MkdirAll(destDir, 0o755); err != nil {
			s.fail(report, entry.Path, domain.FailDirCreate, err)
			return
		}
	}

	dest, err := collisions.Resolve(destDir, name)
	if err != nil {
		kind := domain.FailMove
		if errors.Is(err, errCollisionExhausted) {
			kind = domain.FailCollisionExhausted
		}
		s.fail(report, entry.Path, kind, err)
		return
	}

	if dryRun {
		report.Planned++
		report.Moves = append(report.Moves, domain.Move{From: entry.Path, To: dest})
		return
	}

	if err := s.FS.Move(entry.Path, dest); err != nil {
		s.fail(report, entry.Path, domain.FailMove, err)
		return
	}
	report.Moved++
	report.Moves = append(report.Moves, domain.Move{From: entry.Path, To: dest})
	s.Logger.Verbosef("Moved %s -> %s", entry.Path, dest)
}

func (s *Sorter) fail(report *domain.SortReport, path string, kind domain.FailureKind, err error) {
	report.Failed++
	report.Failures = append(report.Failures, domain.Failure{Path: path, Kind: kind, Err: err})
	s.Logger.Warnf("Skipping %s: %v", path, err)
}

// validate applies the fatal configuration checks, before any mutation.
func (s *Sorter) validate(cfg domain.SortConfig) error {
	if _, err := domain.ParseDateType(string(cfg.DateType)); err != nil {
		return err
	}
	info, err := s.FS.Stat(cfg.Source)
	if err != nil {
		return fmt.Errorf("source directory %q does not exist: %w", cfg.Source, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source %q is not a directory", cfg.Source)
	}
	return nil
}

// enumerate lists the direct regular entries of the source directory. The
// sort is flat: subdirectories are not recursed into, and the listing is
// taken once for the whole run.
func (s *Sorter) enumerate(source string) ([]domain.FileEntry, error) {
	dirEntries, err := s.FS.ReadDir(source)
	if err != nil {
		return nil, err
	}

	var entries []domain.FileEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		entries = append(entries, domain.NewFileEntry(filepath.Join(source, de.Name())))
	}
	return entries, nil
}
