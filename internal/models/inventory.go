// Package models defines the data structures shared by the blast-radius engine,
// the inventory store and the HTTP handlers, with their JSON and YAML encodings.
package models

// NoUsageDaysOnHand is reported for ingredients that are never consumed.
const NoUsageDaysOnHand = 999.0

type Ingredient struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitCost   float64 `json:"unit_cost"`
	ParLevel   float64 `json:"par_level"`
	DailyUsage float64 `json:"daily_usage"`
}

func (i Ingredient) Critical() bool {
	return i.Quantity < i.ParLevel
}

func (i Ingredient) DaysOnHand() float64 {
	if i.DailyUsage <= 0 {
		return NoUsageDaysOnHand
	}
	return i.Quantity / i.DailyUsage
}

type StockUpdate struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type RestockResult struct {
	Ingredient    string  `json:"ingredient"`
	OldQuantity   float64 `json:"old_quantity"`
	NewQuantity   float64 `json:"new_quantity"`
	QuantityAdded float64 `json:"quantity_added"`
	Unit          string  `json:"unit"`
	UnitCost      float64 `json:"unit_cost"`
	TotalCost     float64 `json:"total_cost"`
}
