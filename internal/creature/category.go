package creature

import (
	"fmt"
	"strings"
)

// Category classifies the other party of a contact event. Tag strings from
// configuration are resolved to a Category once, at load time.
type Category int

const (
	CategoryNone Category = iota
	CategoryGround
	CategoryPlayer
	CategoryCreature
	CategoryBoundary
)

var categoryNames = map[Category]string{
	CategoryNone:     "none",
	CategoryGround:   "ground",
	CategoryPlayer:   "player",
	CategoryCreature: "creature",
	CategoryBoundary: "boundary",
}

// ParseCategory converts a tag name (case-insensitive) to a Category.
func ParseCategory(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for category, categoryName := range categoryNames {
		if categoryName == key {
			return category, nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown category: %q", name)
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// IsAgent reports whether the category is a moving actor (player or creature).
func (c Category) IsAgent() bool {
	return c == CategoryPlayer || c == CategoryCreature
}
