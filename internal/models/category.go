package models

import (
	"sort"
	"strings"
)

// Category is a closed set of listing labels. The empty string is the
// "Unspecified" sentinel carried over from the original schema.
type Category string

const (
	CategoryUnspecified Category = ""
	CategoryToys        Category = "toys"
	CategoryFashion     Category = "fashion"
	CategoryElectronics Category = "electronics"
	CategoryBooks       Category = "books"
	CategorySports      Category = "sports"
	CategoryHome        Category = "home"
	CategoryMusic       Category = "music"
)

var categoryLabels = map[Category]string{
	CategoryUnspecified: "Unspecified",
	CategoryToys:        "Toys",
	CategoryFashion:     "Fashion",
	CategoryElectronics: "Electronics",
	CategoryBooks:       "Books",
	CategorySports:      "Sports",
	CategoryHome:        "Home",
	CategoryMusic:       "Music",
}

// Label returns the display label for a category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// CategoryLabels returns all display labels in sorted order.
func CategoryLabels() []string {
	labels := make([]string, 0, len(categoryLabels))
	for _, label := range categoryLabels {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// CategoryFromLabel resolves a display label (case-insensitive) back to its
// category value. "Unspecified" maps to the empty-string sentinel.
func CategoryFromLabel(label string) (Category, bool) {
	for value, l := range categoryLabels {
		if strings.EqualFold(l, label) {
			return value, true
		}
	}
	return CategoryUnspecified, false
}
