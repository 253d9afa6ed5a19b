package presentation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"sortery/internal/domain"
)

func TestFormatMoveLinesTruncates(t *testing.T) {
	moves := make([]domain.Move, 0, 6)
	for i := 0; i < 6; i++ {
		moves = append(moves, domain.Move{
			From: fmt.Sprintf("/src/file%d.txt", i),
			To:   fmt.Sprintf("/dst/2024/2024 (%d).txt", i),
		})
	}

	lines := formatMoveLines(moves, false)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[2] != "..." {
		t.Fatalf("expected ellipsis, got %q", lines[2])
	}
}

func TestFormatMoveLinesVerboseKeepsAll(t *testing.T) {
	moves := make([]domain.Move, 0, 6)
	for i := 0; i < 6; i++ {
		moves = append(moves, domain.Move{From: fmt.Sprintf("/src/%d", i), To: fmt.Sprintf("/dst/%d", i)})
	}

	lines := formatMoveLines(moves, true)
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
}

func TestPrintDryRunOutputIncludesSections(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	report := domain.SortReport{
		Eligible: 2,
		Planned:  2,
		Skipped:  1,
		Moves: []domain.Move{
			{From: "/source/vacation.png", To: "/target/2021/2021-vacation.png"},
		},
	}

	printer.PrintDryRun(report)
	output := buf.String()
	if !strings.Contains(output, "Would sort:") {
		t.Fatalf("expected dry run section, got %q", output)
	}
	if !strings.Contains(output, "vacation.png -> /target/2021/2021-vacation.png") {
		t.Fatalf("expected move line, got %q", output)
	}
	if !strings.Contains(output, "Dry run: 2 of 2 eligible files would be sorted, 1 skipped by type filter.") {
		t.Fatalf("expected summary line, got %q", output)
	}
}

func TestPrintExecutionListsFailures(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	report := domain.SortReport{
		Eligible: 2,
		Moved:    1,
		Failed:   1,
		Moves: []domain.Move{
			{From: "/source/a.txt", To: "/target/2024/2024.txt"},
		},
		Failures: []domain.Failure{
			{Path: "/source/b.txt", Kind: domain.FailMetadataUnavailable, Err: errors.New("file vanished")},
		},
	}

	printer.PrintExecution(report)
	output := buf.String()
	if !strings.Contains(output, "Sorted 1 of 2 eligible files") {
		t.Fatalf("expected summary, got %q", output)
	}
	if !strings.Contains(output, "Failed (1):") {
		t.Fatalf("expected failure section, got %q", output)
	}
	if !strings.Contains(output, "b.txt (metadata_unavailable): file vanished") {
		t.Fatalf("expected failure line, got %q", output)
	}
}

func TestPrintWarningsOnlyWhenVerbose(t *testing.T) {
	report := domain.SortReport{
		Warnings: []string{"creation time not available for a.txt, using modification time"},
	}

	var quiet bytes.Buffer
	Printer{Writer: &quiet}.PrintExecution(report)
	if strings.Contains(quiet.String(), "Warnings:") {
		t.Fatalf("expected no warnings section without verbose")
	}

	var verbose bytes.Buffer
	Printer{Writer: &verbose, Verbose: true}.PrintExecution(report)
	if !strings.Contains(verbose.String(), "creation time not available") {
		t.Fatalf("expected warnings section with verbose, got %q", verbose.String())
	}
}
