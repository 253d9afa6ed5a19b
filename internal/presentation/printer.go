package presentation

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"sortery/internal/domain"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

func (p Printer) PrintDryRun(report domain.SortReport) {
	fmt.Fprintln(p.Writer, "Would sort:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatMoveLines(report.Moves, p.Verbose) {
		fmt.Fprintln(p.Writer, line)
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Dry run: %d of %d eligible files would be sorted, %d skipped by type filter.\n",
		report.Planned, report.Eligible, report.Skipped)

	p.printFailures(report)
	p.printWarnings(report)
}

func (p Printer) PrintExecution(report domain.SortReport) {
	fmt.Fprintln(p.Writer, "Sorted:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatMoveLines(report.Moves, p.Verbose) {
		fmt.Fprintln(p.Writer, line)
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Sorted %d of %d eligible files, %d skipped by type filter.\n",
		report.Moved, report.Eligible, report.Skipped)

	p.printFailures(report)
	p.printWarnings(report)
}

func (p Printer) printFailures(report domain.SortReport) {
	if report.Failed == 0 {
		return
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Failed (%d):\n", report.Failed)
	for _, failure := range report.Failures {
		fmt.Fprintf(p.Writer, "- %s (%s): %v\n", filepath.Base(failure.Path), failure.Kind, failure.Err)
	}
}

func (p Printer) printWarnings(report domain.SortReport) {
	if !p.Verbose || len(report.Warnings) == 0 {
		return
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "Warnings:")
	for _, warning := range report.Warnings {
		fmt.Fprintln(p.Writer, "- "+warning)
	}
}

func formatMoveLines(moves []domain.Move, verbose bool) []string {
	lines := make([]string, 0, len(moves))
	for _, move := range moves {
		lines = append(lines, fmt.Sprintf("%s -> %s", filepath.Base(move.From), move.To))
	}

	if verbose || len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}

func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
