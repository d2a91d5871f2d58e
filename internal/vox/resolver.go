package vox

import (
	"io"
	"log/slog"
	"os"
)

// SizeResolver reads container files and resolves their voxel-grid extents.
// It is the resilience boundary of the pipeline: any failure (unreadable
// file, bad signature, missing SIZE chunk) is logged once and absorbed into
// the fallback value, so callers can treat size lookup as a total operation.
// Files may be read mid-write by an external editor; a malformed asset must
// never abort a rebuild of the others.
type SizeResolver struct {
	Fallback Dimensions
	Log      *slog.Logger
}

// NewSizeResolver returns a resolver using the canonical default fallback.
// A nil logger discards warnings.
func NewSizeResolver(log *slog.Logger) *SizeResolver {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SizeResolver{Fallback: DefaultDimensions, Log: log}
}

// Resolve returns the extents of the container at path, or the fallback if
// the file cannot be read or decoded. It never returns an error.
func (r *SizeResolver) Resolve(path string) Dimensions {
	data, err := os.ReadFile(path)
	if err == nil {
		var dims Dimensions
		dims, err = ReadDimensions(data)
		if err == nil {
			return dims
		}
	}
	r.Log.Warn("could not resolve asset size, using fallback",
		"path", path,
		"fallback", r.Fallback.String(),
		"error", err)
	return r.Fallback
}
