package asset

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestListContainers_SortedAndFiltered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b_wall.vox", "a_block.vox", "readme.txt", "a_block.png", ".hidden.vox"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.vox"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	names, err := ListContainers(dir)
	if err != nil {
		t.Fatalf("ListContainers: %v", err)
	}
	want := []string{"a_block.vox", "b_wall.vox"}
	if !slices.Equal(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestListContainers_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"c.vox", "a.vox", "b.vox"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	first, err := ListContainers(dir)
	if err != nil {
		t.Fatalf("ListContainers: %v", err)
	}
	second, err := ListContainers(dir)
	if err != nil {
		t.Fatalf("ListContainers: %v", err)
	}
	if !slices.Equal(first, second) {
		t.Errorf("repeated listings differ: %v vs %v", first, second)
	}
}

func TestListContainers_MissingDir(t *testing.T) {
	t.Parallel()

	names, err := ListContainers(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("ListContainers: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want empty", names)
	}
}
