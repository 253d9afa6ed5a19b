package sorter

import (
	"testing"

	"sortery/internal/domain"
)

func TestEligibleOnlyTypeTakesPrecedence(t *testing.T) {
	only := domain.ExtSet([]string{"jpg"})
	exclude := domain.ExtSet([]string{"jpg"})

	// only_type wins outright; exclude_type is ignored, not merged.
	if !Eligible("jpg", only, exclude) {
		t.Fatalf("jpg must be eligible when listed in only_type")
	}
	if Eligible("png", only, nil) {
		t.Fatalf("png must not be eligible when only_type lists jpg")
	}
}

func TestEligibleExcludeType(t *testing.T) {
	exclude := domain.ExtSet([]string{"png", "gif"})

	if Eligible("png", nil, exclude) {
		t.Fatalf("png must be excluded")
	}
	if !Eligible("jpg", nil, exclude) {
		t.Fatalf("jpg must pass the exclude filter")
	}
}

func TestEligibleNoFilters(t *testing.T) {
	if !Eligible("jpg", nil, nil) {
		t.Fatalf("everything is eligible without filters")
	}
	if !Eligible("", nil, nil) {
		t.Fatalf("extensionless files are eligible without filters")
	}
}

func TestEligibleExtensionlessFiles(t *testing.T) {
	if !Eligible("", domain.ExtSet([]string{""}), nil) {
		t.Fatalf("only_type containing \"\" must include extensionless files")
	}
	if Eligible("", domain.ExtSet([]string{"txt"}), nil) {
		t.Fatalf("extensionless files must not match only_type=txt")
	}
	if Eligible("", nil, domain.ExtSet([]string{""})) {
		t.Fatalf("exclude_type containing \"\" must exclude extensionless files")
	}
}

func TestEligibilityIsCaseInsensitive(t *testing.T) {
	// Case folding happens at the edges: entries and config lists are both
	// normalized, so Photo.JPG and photo.jpg filter identically.
	entry := domain.NewFileEntry("/source/Photo.JPG")
	only := domain.ExtSet([]string{"JpG"})

	if entry.Ext != "jpg" {
		t.Fatalf("expected normalized extension, got %q", entry.Ext)
	}
	if !Eligible(entry.Ext, only, nil) {
		t.Fatalf("Photo.JPG must match only_type=[JpG]")
	}
}
