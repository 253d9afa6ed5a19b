package sorter

import (
	"testing"
	"time"
)

var namedDate = time.Date(2021, 7, 4, 15, 30, 45, 0, time.Local)

func TestFormatDateOnly(t *testing.T) {
	formatter, fellBack := newNameFormatter("%Y")
	if fellBack {
		t.Fatalf("%%Y must compile")
	}

	folder, stem := formatter.Format(namedDate, "vacation", false)
	if folder != "2021" {
		t.Fatalf("unexpected folder: %q", folder)
	}
	if stem != "2021" {
		t.Fatalf("unexpected stem: %q", stem)
	}
}

func TestFormatPreservesOriginalStem(t *testing.T) {
	formatter, _ := newNameFormatter("%Y")

	_, stem := formatter.Format(namedDate, "vacation", true)
	if stem != "2021-vacation" {
		t.Fatalf("unexpected stem: %q", stem)
	}
}

func TestFormatFullPattern(t *testing.T) {
	formatter, fellBack := newNameFormatter("%Y-%m-%d %Hh%Mm%Ss")
	if fellBack {
		t.Fatalf("pattern must compile")
	}

	folder, _ := formatter.Format(namedDate, "", false)
	if folder != "2021-07-04 15h30m45s" {
		t.Fatalf("unexpected folder: %q", folder)
	}
}

func TestFormatNestedPatternFlattensStem(t *testing.T) {
	formatter, _ := newNameFormatter("%Y/%m")

	folder, stem := formatter.Format(namedDate, "vacation", true)
	if folder != "2021/07" {
		t.Fatalf("unexpected folder: %q", folder)
	}
	// The stem stays a single path element even when the folder nests.
	if stem != "2021-07-vacation" {
		t.Fatalf("unexpected stem: %q", stem)
	}
}

func TestFormatFallsBackOnEmptyPattern(t *testing.T) {
	formatter, fellBack := newNameFormatter("")
	if !fellBack {
		t.Fatalf("empty pattern must fall back")
	}

	folder, _ := formatter.Format(namedDate, "", false)
	if folder != "2021" {
		t.Fatalf("expected four-digit year fallback, got %q", folder)
	}
}

func TestFormatFallsBackOnInvalidPattern(t *testing.T) {
	formatter, fellBack := newNameFormatter("%Q")
	if !fellBack {
		t.Fatalf("invalid pattern must fall back")
	}

	folder, _ := formatter.Format(namedDate, "", false)
	if folder != "2021" {
		t.Fatalf("expected four-digit year fallback, got %q", folder)
	}
}
