package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nevereverland/voxsync/internal/asset"
	"github.com/nevereverland/voxsync/internal/vox"
)

// registryEntry is the JSON shape of one asset in the generated registry.
type registryEntry struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	CategoryTag string         `json:"categoryTag"`
	Path        string         `json:"path"`
	Size        vox.Dimensions `json:"size"`
	Tags        []string       `json:"tags"`
}

// EncodeRegistry renders the generated registry: one object whose keys are
// the nine fixed categories in emission order, every key present even when
// its folder is absent on disk. encoding/json sorts map keys, so the
// document is assembled key by key to keep the fixed order.
func EncodeRegistry(perCategory map[asset.Category][]asset.Descriptor) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	cats := asset.Categories()
	for i, category := range cats {
		entries := make([]registryEntry, 0, len(perCategory[category]))
		for _, d := range perCategory[category] {
			entries = append(entries, registryEntry{
				ID:          d.ID,
				Name:        d.Name,
				CategoryTag: category.Tag(),
				Path:        d.Path,
				Size:        d.Size,
				Tags:        d.Tags,
			})
		}

		listJSON, err := json.MarshalIndent(entries, "  ", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s registry entries: %w", category, err)
		}
		fmt.Fprintf(&buf, "  %q: %s", category, listJSON)
		if i < len(cats)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// WriteRegistry persists the generated registry artifact atomically.
func WriteRegistry(path string, perCategory map[asset.Category][]asset.Descriptor) error {
	data, err := EncodeRegistry(perCategory)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	return nil
}
