package asset

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ContainerExt is the filename extension of voxel container files.
const ContainerExt = ".vox"

// PreviewExt is the filename extension of optional preview images that sit
// next to containers under the same stem.
const PreviewExt = ".png"

// ListContainers returns the container filenames in dir in ascending
// lexicographic order. The order is deterministic for an unchanged
// directory; manifest ordering and idempotence depend on it. A missing
// directory reads as zero assets, not an error.
func ListContainers(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(name, ContainerExt) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
