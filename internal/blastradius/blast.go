package blastradius

import (
	"math"
	"strings"

	"github.com/holymole/core/internal/models"
)

func (e *Engine) Classify(name string) models.NodeKind {
	if _, ok := e.menuSet[name]; ok {
		return models.KindMenuItem
	}
	if _, ok := e.subSet[name]; ok {
		return models.KindSubRecipe
	}
	return models.KindIngredient
}

// Compute reports everything that depends on name. It never fails: blank or
// unknown names produce an empty result that still carries the menu size.
func (e *Engine) Compute(name string) models.BlastRadius {
	trimmed := strings.TrimSpace(name)

	key, ok := e.Resolve(trimmed)
	if !ok {
		return models.EmptyBlastRadius(trimmed, e.TotalMenuCount())
	}

	visited, edges := Traverse(key, e.index)

	result := models.EmptyBlastRadius(key, e.TotalMenuCount())
	result.Edges = edges

	var total float64
	for _, n := range visited {
		kind := e.Classify(n)
		result.Nodes = append(result.Nodes, newNode(n, kind))
		if kind != models.KindMenuItem {
			continue
		}

		revenue := e.revenue[n]
		total += revenue
		result.AffectedMenuItems = append(result.AffectedMenuItems, n)
		result.AffectedWithRevenue = append(result.AffectedWithRevenue, models.MenuRevenue{
			MenuItem:       n,
			RevenuePerHour: revenue,
		})
	}
	result.TotalRevenueRiskPerHour = roundCents(total)

	return result
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
