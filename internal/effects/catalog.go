package effects

import (
	"fmt"
	"sort"
	"strings"
)

// Info contains metadata about an effect.
type Info struct {
	ID    string
	Title string
}

// All returns every effect in declaration order.
func All() []Effect {
	return []Effect{Static, Bars, Fade, Lerp, Spiral, Wash, Scroll}
}

// List returns information about all effects, sorted by ID.
func List() []Info {
	all := All()
	result := make([]Info, 0, len(all))
	for _, e := range all {
		result = append(result, Info{
			ID:    e.String(),
			Title: e.Title(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Parse looks up an effect by its ID, ignoring case and surrounding space.
// Returns an error if the ID is not known.
func Parse(id string) (Effect, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, e := range All() {
		if e.String() == id {
			return e, nil
		}
	}
	return Static, fmt.Errorf("effects: unknown effect %q", id)
}
