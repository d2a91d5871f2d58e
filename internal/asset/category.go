// Package asset defines the fixed category set, directory scanning, and the
// pure derivation rules that turn a container filename into a descriptor.
package asset

// Category is one of the fixed material classifications under which assets
// are grouped on disk and in the registry.
type Category string

// The nine fixed categories. Folder names outside this set are invisible to
// scanning, registry emission, and watch-mode event routing.
const (
	CategoryGrass  Category = "grass"
	CategoryDirt   Category = "dirt"
	CategoryStone  Category = "stone"
	CategoryWood   Category = "wood"
	CategoryLeaves Category = "leaves"
	CategoryWater  Category = "water"
	CategorySand   Category = "sand"
	CategorySnow   Category = "snow"
	CategoryIce    Category = "ice"
)

// categories is the fixed ordered set; the order is the registry emission
// order and must not change.
var categories = []Category{
	CategoryGrass,
	CategoryDirt,
	CategoryStone,
	CategoryWood,
	CategoryLeaves,
	CategoryWater,
	CategorySand,
	CategorySnow,
	CategoryIce,
}

// registryTags maps each category to the literal tag the generated registry
// records, matching the constants the editor compiles against.
var registryTags = map[Category]string{
	CategoryGrass:  "GRASS",
	CategoryDirt:   "DIRT",
	CategoryStone:  "STONE",
	CategoryWood:   "WOOD",
	CategoryLeaves: "LEAVES",
	CategoryWater:  "WATER",
	CategorySand:   "SAND",
	CategorySnow:   "SNOW",
	CategoryIce:    "ICE",
}

// Categories returns the fixed category set in registry emission order.
// Callers must not mutate the returned slice.
func Categories() []Category {
	return categories
}

// ParseCategory reports whether name is a member of the fixed category set.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	_, ok := registryTags[c]
	return c, ok
}

// Tag returns the literal registry tag for the category, or the empty
// string for an unknown category.
func (c Category) Tag() string {
	return registryTags[c]
}
