package blastradius

import (
	"slices"

	"github.com/holymole/core/internal/models"
)

// ReverseIndex maps each node to the nodes that require it. Both menu layers
// are merged into one adjacency space.
type ReverseIndex struct {
	keys       []string
	dependents map[string][]string
}

// BuildReverseIndex inverts the menu-item layer and then the sub-recipe
// layer. Dependents keep the order in which their parents were declared.
// The result is a fresh structure on every call.
func BuildReverseIndex(menu models.Menu) *ReverseIndex {
	idx := &ReverseIndex{dependents: make(map[string][]string)}

	for _, layer := range [][]models.Recipe{menu.MenuItems, menu.SubRecipes} {
		for _, parent := range layer {
			for _, child := range parent.Requires {
				if _, seen := idx.dependents[child]; !seen {
					idx.keys = append(idx.keys, child)
				}
				idx.dependents[child] = append(idx.dependents[child], parent.Name)
			}
		}
	}

	return idx
}

func (r *ReverseIndex) Len() int {
	return len(r.keys)
}

// Keys returns every node with at least one dependent, in first-seen order.
func (r *ReverseIndex) Keys() []string {
	return slices.Clone(r.keys)
}

func (r *ReverseIndex) Dependents(name string) []string {
	return slices.Clone(r.dependents[name])
}
