// Package catalog derives asset descriptors from a directory snapshot and
// persists the two artifacts the editor consumes: per-category manifest
// files and the single cross-category registry.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nevereverland/voxsync/internal/asset"
	"github.com/nevereverland/voxsync/internal/vox"
)

// Build scans one category folder under root and derives its descriptor
// list, ordered exactly as the scanner lists files. Size resolution is
// total; the only error source is an unreadable directory.
func Build(root string, category asset.Category, resolver *vox.SizeResolver) ([]asset.Descriptor, error) {
	dir := filepath.Join(root, string(category))
	files, err := asset.ListContainers(dir)
	if err != nil {
		return nil, err
	}

	descriptors := make([]asset.Descriptor, 0, len(files))
	for _, file := range files {
		size := resolver.Resolve(filepath.Join(dir, file))
		descriptors = append(descriptors, asset.NewDescriptor(category, file, size))
	}
	return descriptors, nil
}

// BuildAll scans every fixed category under root. Categories whose folder
// is absent map to an empty list, so the result always covers the full
// fixed set.
func BuildAll(root string, resolver *vox.SizeResolver) (map[asset.Category][]asset.Descriptor, error) {
	all := make(map[asset.Category][]asset.Descriptor, len(asset.Categories()))
	for _, category := range asset.Categories() {
		descriptors, err := Build(root, category, resolver)
		if err != nil {
			return nil, err
		}
		all[category] = descriptors
	}
	return all, nil
}

// writeFileAtomic writes data to path via a temp file in the same directory
// and an atomic rename, so a concurrent reader never observes a partially
// written artifact.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing artifact: %w", err)
	}
	return nil
}
