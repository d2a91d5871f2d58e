package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/nevereverland/voxsync/internal/asset"
	"github.com/nevereverland/voxsync/internal/vox"
)

// ManifestFileName is the per-category manifest filename.
const ManifestFileName = "manifest.json"

// manifestEntry is the JSON shape of one asset in a category manifest.
type manifestEntry struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	File        string         `json:"file"`
	Size        vox.Dimensions `json:"size"`
	Preview     string         `json:"preview"`
}

// EncodeManifest renders the manifest JSON for one category: a single-key
// object mapping the category name to its ordered entry list, pretty printed
// with a trailing newline.
func EncodeManifest(category asset.Category, descriptors []asset.Descriptor) ([]byte, error) {
	entries := make([]manifestEntry, 0, len(descriptors))
	for _, d := range descriptors {
		entries = append(entries, manifestEntry{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description(),
			File:        d.File,
			Size:        d.Size,
			Preview:     d.Preview,
		})
	}

	doc := map[asset.Category][]manifestEntry{category: entries}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding %s manifest: %w", category, err)
	}
	return buf.Bytes(), nil
}

// WriteManifest persists the category's manifest to
// <root>/<category>/manifest.json, replacing any previous one atomically.
func WriteManifest(root string, category asset.Category, descriptors []asset.Descriptor) error {
	data, err := EncodeManifest(category, descriptors)
	if err != nil {
		return err
	}
	path := filepath.Join(root, string(category), ManifestFileName)
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing %s manifest: %w", category, err)
	}
	return nil
}
