package domain

import "testing"

func TestNewFileEntry(t *testing.T) {
	entry := NewFileEntry("/source/Photo.JPG")
	if entry.Name != "Photo.JPG" {
		t.Fatalf("unexpected name: %q", entry.Name)
	}
	if entry.Stem != "Photo" {
		t.Fatalf("unexpected stem: %q", entry.Stem)
	}
	if entry.Ext != "jpg" {
		t.Fatalf("expected normalized extension, got %q", entry.Ext)
	}
	if entry.DotExt != ".JPG" {
		t.Fatalf("expected case-preserved extension, got %q", entry.DotExt)
	}
}

func TestNewFileEntryWithoutExtension(t *testing.T) {
	entry := NewFileEntry("/source/README")
	if entry.Ext != "" || entry.DotExt != "" {
		t.Fatalf("expected empty extension, got %q / %q", entry.Ext, entry.DotExt)
	}
	if entry.Stem != "README" {
		t.Fatalf("unexpected stem: %q", entry.Stem)
	}
}

func TestNewFileEntryDotfile(t *testing.T) {
	entry := NewFileEntry("/source/.bashrc")
	if entry.Ext != "" {
		t.Fatalf("dotfiles have no extension, got %q", entry.Ext)
	}
	if entry.Stem != ".bashrc" {
		t.Fatalf("unexpected stem: %q", entry.Stem)
	}
}

func TestExtSetNormalizes(t *testing.T) {
	set := ExtSet([]string{"JPG", ".png", "gif"})
	for _, ext := range []string{"jpg", "png", "gif"} {
		if !set[ext] {
			t.Fatalf("expected %q in set %v", ext, set)
		}
	}
}

func TestParseDateType(t *testing.T) {
	for _, code := range []string{"m", "c"} {
		if _, err := ParseDateType(code); err != nil {
			t.Fatalf("unexpected error for %q: %v", code, err)
		}
	}
	for _, code := range []string{"", "a", "x", "mm"} {
		if _, err := ParseDateType(code); err == nil {
			t.Fatalf("expected error for %q", code)
		}
	}
}
