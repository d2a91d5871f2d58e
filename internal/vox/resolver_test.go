package vox

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_ValidContainer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cube.vox")
	data := containerBytes(chunkBytes("SIZE", sizeContent(2, 3, 4), nil))
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	r := NewSizeResolver(nil)
	dims := r.Resolve(path)
	if (dims != Dimensions{X: 2, Y: 3, Z: 4}) {
		t.Errorf("dimensions = %v, want 2x3x4", dims)
	}
}

func TestResolve_BadSignatureFallsBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.vox")
	if err := os.WriteFile(path, []byte("not a container at all"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	var logBuf bytes.Buffer
	r := NewSizeResolver(slog.New(slog.NewTextHandler(&logBuf, nil)))
	dims := r.Resolve(path)
	if dims != DefaultDimensions {
		t.Errorf("dimensions = %v, want fallback %v", dims, DefaultDimensions)
	}
	if !bytes.Contains(logBuf.Bytes(), []byte("fallback")) {
		t.Errorf("expected a fallback warning in the log, got %q", logBuf.String())
	}
}

func TestResolve_TruncatedFileFallsBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cut.vox")
	if err := os.WriteFile(path, containerBytes(), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	r := NewSizeResolver(nil)
	if dims := r.Resolve(path); dims != DefaultDimensions {
		t.Errorf("dimensions = %v, want fallback %v", dims, DefaultDimensions)
	}
}

func TestResolve_MissingFileFallsBack(t *testing.T) {
	t.Parallel()

	r := NewSizeResolver(nil)
	path := filepath.Join(t.TempDir(), "nope.vox")
	if dims := r.Resolve(path); dims != DefaultDimensions {
		t.Errorf("dimensions = %v, want fallback %v", dims, DefaultDimensions)
	}
}

func TestResolve_CustomFallback(t *testing.T) {
	t.Parallel()

	fb := Dimensions{X: 1, Y: 1, Z: 1}
	r := &SizeResolver{Fallback: fb, Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	if dims := r.Resolve(filepath.Join(t.TempDir(), "nope.vox")); dims != fb {
		t.Errorf("dimensions = %v, want %v", dims, fb)
	}
}
