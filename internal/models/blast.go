// Package models defines the data structures shared by the blast-radius engine,
// the inventory store and the HTTP handlers, with their JSON and YAML encodings.
package models

type NodeKind string

const (
	KindMenuItem   NodeKind = "menu_item"
	KindSubRecipe  NodeKind = "sub_recipe"
	KindIngredient NodeKind = "ingredient"
)

// BlastRadius is the answer to "what breaks if this runs out". Slices are
// never nil so an unresolved lookup still encodes as empty JSON arrays.
type BlastRadius struct {
	Ingredient              string        `json:"ingredient"`
	Nodes                   []Node        `json:"nodes"`
	Edges                   []Edge        `json:"edges"`
	AffectedMenuItems       []string      `json:"affected_menu_items"`
	AffectedWithRevenue     []MenuRevenue `json:"affected_with_revenue"`
	TotalMenuCount          int           `json:"total_menu_count"`
	TotalRevenueRiskPerHour float64       `json:"total_revenue_risk_per_hour"`
}

type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Type  NodeKind `json:"type"`
}

// Edge points from a dependency to the item that requires it.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type MenuRevenue struct {
	MenuItem       string  `json:"menu_item"`
	RevenuePerHour float64 `json:"revenue_per_hour"`
}

// EmptyBlastRadius is the well-formed result for a name that did not resolve.
func EmptyBlastRadius(ingredient string, totalMenuCount int) BlastRadius {
	return BlastRadius{
		Ingredient:          ingredient,
		Nodes:               []Node{},
		Edges:               []Edge{},
		AffectedMenuItems:   []string{},
		AffectedWithRevenue: []MenuRevenue{},
		TotalMenuCount:      totalMenuCount,
	}
}

func (b BlastRadius) Resolved() bool {
	return len(b.Nodes) > 0
}
