package asset

import (
	"path"
	"strings"

	"github.com/nevereverland/voxsync/internal/vox"
)

// Descriptor is the derived metadata record for one asset. Descriptors have
// no persistent identity: every rebuild recomputes them wholesale from a
// directory snapshot and discards them after serialization.
type Descriptor struct {
	ID       string
	Name     string
	Category Category
	File     string // bare container filename
	Path     string // category-relative path, "<category>/<file>"
	Preview  string // same-stem preview image filename
	Size     vox.Dimensions
	Tags     []string
}

// NewDescriptor derives the full descriptor for one container file in a
// category folder.
func NewDescriptor(category Category, file string, size vox.Dimensions) Descriptor {
	stem := strings.TrimSuffix(file, ContainerExt)
	return Descriptor{
		ID:       ID(stem),
		Name:     DisplayName(stem),
		Category: category,
		File:     file,
		Path:     path.Join(string(category), file),
		Preview:  stem + PreviewExt,
		Size:     size,
		Tags:     Tags(category, stem),
	}
}

// Description synthesizes the one-line manifest description for the asset.
func (d Descriptor) Description() string {
	return d.Name + " asset"
}
