package blastradius

import "strings"

// Resolve maps user input to a declared node name, ignoring case and
// surrounding whitespace. Nodes with dependents are matched first, then menu
// items, then sub-recipes.
func (e *Engine) Resolve(input string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(input))
	if want == "" {
		return "", false
	}

	for _, key := range e.index.keys {
		if strings.ToLower(key) == want {
			return key, true
		}
	}
	for _, item := range e.menuItems {
		if strings.ToLower(item.Name) == want {
			return item.Name, true
		}
	}
	for _, sub := range e.subRecipes {
		if strings.ToLower(sub.Name) == want {
			return sub.Name, true
		}
	}

	return "", false
}
