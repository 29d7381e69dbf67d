// Package models defines the data structures shared by the blast-radius engine,
// the inventory store and the HTTP handlers, with their JSON and YAML encodings.
package models

// Menu is the static composition graph. Layers are ordered because the
// order of declaration decides the order of dependents during traversal.
type Menu struct {
	MenuItems  []Recipe `yaml:"menu_items" json:"menu_items" validate:"dive"`
	SubRecipes []Recipe `yaml:"sub_recipes" json:"sub_recipes" validate:"dive"`
}

type Recipe struct {
	Name           string   `yaml:"name" json:"name" validate:"required"`
	Requires       []string `yaml:"requires" json:"requires" validate:"dive,required"`
	RevenuePerHour float64  `yaml:"revenue_per_hour,omitempty" json:"revenue_per_hour,omitempty" validate:"gte=0"`
}

func (m Menu) Revenue() map[string]float64 {
	revenue := make(map[string]float64, len(m.MenuItems))
	for _, item := range m.MenuItems {
		revenue[item.Name] = item.RevenuePerHour
	}
	return revenue
}
