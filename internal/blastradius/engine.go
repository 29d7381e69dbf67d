package blastradius

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/holymole/core/internal/models"
)

var (
	ErrEmptyName       = errors.New("recipe name is empty")
	ErrDuplicateName   = errors.New("recipe declared more than once")
	ErrAmbiguousKind   = errors.New("name declared as both menu item and sub-recipe")
	ErrNegativeRevenue = errors.New("revenue per hour is negative")
)

type Engine struct {
	menuItems  []models.Recipe
	subRecipes []models.Recipe
	menuSet    map[string]struct{}
	subSet     map[string]struct{}
	revenue    map[string]float64
	index      *ReverseIndex
}

// New validates menu and builds the reverse index once. The menu is copied,
// so later changes to it are not observed by the engine.
func New(menu models.Menu) (*Engine, error) {
	e := &Engine{
		menuItems:  cloneRecipes(menu.MenuItems),
		subRecipes: cloneRecipes(menu.SubRecipes),
		menuSet:    make(map[string]struct{}, len(menu.MenuItems)),
		subSet:     make(map[string]struct{}, len(menu.SubRecipes)),
		revenue:    menu.Revenue(),
	}

	for _, item := range e.menuItems {
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("menu item: %w", ErrEmptyName)
		}
		if _, dup := e.menuSet[item.Name]; dup {
			return nil, fmt.Errorf("menu item %q: %w", item.Name, ErrDuplicateName)
		}
		if item.RevenuePerHour < 0 {
			return nil, fmt.Errorf("menu item %q: %w", item.Name, ErrNegativeRevenue)
		}
		e.menuSet[item.Name] = struct{}{}
	}

	for _, sub := range e.subRecipes {
		if strings.TrimSpace(sub.Name) == "" {
			return nil, fmt.Errorf("sub-recipe: %w", ErrEmptyName)
		}
		if _, dup := e.subSet[sub.Name]; dup {
			return nil, fmt.Errorf("sub-recipe %q: %w", sub.Name, ErrDuplicateName)
		}
		if _, both := e.menuSet[sub.Name]; both {
			return nil, fmt.Errorf("%q: %w", sub.Name, ErrAmbiguousKind)
		}
		e.subSet[sub.Name] = struct{}{}
	}

	e.index = BuildReverseIndex(models.Menu{MenuItems: e.menuItems, SubRecipes: e.subRecipes})
	return e, nil
}

// Menu returns a copy of the configured composition graph.
func (e *Engine) Menu() models.Menu {
	return models.Menu{
		MenuItems:  cloneRecipes(e.menuItems),
		SubRecipes: cloneRecipes(e.subRecipes),
	}
}

func (e *Engine) Index() *ReverseIndex {
	return e.index
}

func (e *Engine) TotalMenuCount() int {
	return len(e.menuItems)
}

func (e *Engine) RevenuePerHour(menuItem string) float64 {
	return e.revenue[menuItem]
}

// IngredientCount is the number of leaf ingredients, excluding sub-recipes
// that also appear as requirements.
func (e *Engine) IngredientCount() int {
	n := 0
	for _, key := range e.index.keys {
		if e.Classify(key) == models.KindIngredient {
			n++
		}
	}
	return n
}

// Nodes lists every known node: menu items and sub-recipes in declaration
// order, then ingredient leaves in the order they were first required.
func (e *Engine) Nodes() []models.Node {
	nodes := make([]models.Node, 0, len(e.menuItems)+len(e.subRecipes)+e.index.Len())
	for _, item := range e.menuItems {
		nodes = append(nodes, newNode(item.Name, models.KindMenuItem))
	}
	for _, sub := range e.subRecipes {
		nodes = append(nodes, newNode(sub.Name, models.KindSubRecipe))
	}
	for _, key := range e.index.keys {
		if kind := e.Classify(key); kind == models.KindIngredient {
			nodes = append(nodes, newNode(key, kind))
		}
	}
	return nodes
}

func cloneRecipes(in []models.Recipe) []models.Recipe {
	out := make([]models.Recipe, len(in))
	for i, r := range in {
		r.Requires = slices.Clone(r.Requires)
		out[i] = r
	}
	return out
}

func newNode(name string, kind models.NodeKind) models.Node {
	return models.Node{ID: name, Label: name, Type: kind}
}
