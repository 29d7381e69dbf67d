package blastradius

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holymole/core/internal/menu"
	"github.com/holymole/core/internal/models"
)

func sandwichMenu() models.Menu {
	return models.Menu{
		MenuItems: []models.Recipe{
			{Name: "Sandwich", Requires: []string{"Bun", "Spicy Mayo"}, RevenuePerHour: 150},
			{Name: "Tacos", Requires: []string{"Tortilla", "Eggs"}, RevenuePerHour: 100.125},
		},
		SubRecipes: []models.Recipe{
			{Name: "Spicy Mayo", Requires: []string{"Mayo", "Jalapeño"}},
			{Name: "Mayo", Requires: []string{"Eggs", "Oil"}},
		},
	}
}

func newEngine(t *testing.T, m models.Menu) *Engine {
	t.Helper()
	e, err := New(m)
	require.NoError(t, err)
	return e
}

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	m, err := menu.Default()
	require.NoError(t, err)
	return newEngine(t, *m)
}

func nodeIDs(nodes []models.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

func TestCompute(t *testing.T) {
	e := newEngine(t, sandwichMenu())

	t.Run("walks through sub-recipes in stack order", func(t *testing.T) {
		result := e.Compute("Eggs")

		assert.Equal(t, "Eggs", result.Ingredient)
		assert.Equal(t, []string{"Eggs", "Mayo", "Spicy Mayo", "Sandwich", "Tacos"}, nodeIDs(result.Nodes))
		assert.Equal(t, []models.Edge{
			{From: "Eggs", To: "Tacos"},
			{From: "Eggs", To: "Mayo"},
			{From: "Mayo", To: "Spicy Mayo"},
			{From: "Spicy Mayo", To: "Sandwich"},
		}, result.Edges)
		assert.Equal(t, []string{"Sandwich", "Tacos"}, result.AffectedMenuItems)
		assert.Equal(t, 2, result.TotalMenuCount)
	})

	t.Run("tags nodes with their kind", func(t *testing.T) {
		result := e.Compute("Eggs")

		kinds := map[string]models.NodeKind{}
		for _, n := range result.Nodes {
			assert.Equal(t, n.ID, n.Label)
			kinds[n.ID] = n.Type
		}
		assert.Equal(t, models.KindIngredient, kinds["Eggs"])
		assert.Equal(t, models.KindSubRecipe, kinds["Mayo"])
		assert.Equal(t, models.KindSubRecipe, kinds["Spicy Mayo"])
		assert.Equal(t, models.KindMenuItem, kinds["Sandwich"])
	})

	t.Run("rounds revenue to cents", func(t *testing.T) {
		result := e.Compute("Eggs")

		assert.Equal(t, []models.MenuRevenue{
			{MenuItem: "Sandwich", RevenuePerHour: 150},
			{MenuItem: "Tacos", RevenuePerHour: 100.125},
		}, result.AffectedWithRevenue)
		assert.InDelta(t, 250.13, result.TotalRevenueRiskPerHour, 0.01)
	})

	t.Run("direct dependents are reached with an edge", func(t *testing.T) {
		for _, recipe := range append(sandwichMenu().MenuItems, sandwichMenu().SubRecipes...) {
			for _, child := range recipe.Requires {
				result := e.Compute(child)
				assert.Contains(t, nodeIDs(result.Nodes), recipe.Name, "from %s", child)
				assert.Contains(t, result.Edges, models.Edge{From: child, To: recipe.Name})
			}
		}
	})

	t.Run("starting at a sub-recipe", func(t *testing.T) {
		result := e.Compute("spicy mayo")

		assert.Equal(t, "Spicy Mayo", result.Ingredient)
		assert.Equal(t, []string{"Spicy Mayo", "Sandwich"}, nodeIDs(result.Nodes))
		assert.Equal(t, 150.0, result.TotalRevenueRiskPerHour)
	})

	t.Run("starting at a menu item reports only itself", func(t *testing.T) {
		result := e.Compute("TACOS")

		assert.Equal(t, "Tacos", result.Ingredient)
		assert.Equal(t, []string{"Tacos"}, nodeIDs(result.Nodes))
		assert.Empty(t, result.Edges)
		assert.Equal(t, []string{"Tacos"}, result.AffectedMenuItems)
	})

	t.Run("blank input gives the empty result", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			result := e.Compute(input)

			assert.Equal(t, "", result.Ingredient)
			assert.Empty(t, result.Nodes)
			assert.Empty(t, result.Edges)
			assert.Empty(t, result.AffectedMenuItems)
			assert.Empty(t, result.AffectedWithRevenue)
			assert.Equal(t, 0.0, result.TotalRevenueRiskPerHour)
			assert.Equal(t, 2, result.TotalMenuCount)
		}
	})

	t.Run("unknown name gives the empty result with trimmed input", func(t *testing.T) {
		result := e.Compute("  Unobtainium ")

		assert.Equal(t, "Unobtainium", result.Ingredient)
		assert.NotNil(t, result.Nodes)
		assert.Empty(t, result.Nodes)
		assert.Equal(t, 0.0, result.TotalRevenueRiskPerHour)
		assert.Equal(t, 2, result.TotalMenuCount)
	})
}

func TestComputeDefaultMenu(t *testing.T) {
	e := defaultEngine(t)

	t.Run("lime puts every lime dish at risk", func(t *testing.T) {
		result := e.Compute("Lime")

		assert.Len(t, result.AffectedMenuItems, 20)
		assert.Contains(t, result.AffectedWithRevenue, models.MenuRevenue{MenuItem: "Margarita", RevenuePerHour: 200})
		assert.Contains(t, result.AffectedWithRevenue, models.MenuRevenue{MenuItem: "Paloma", RevenuePerHour: 95})
		assert.InDelta(t, 2285.0, result.TotalRevenueRiskPerHour, 0.01)
		assert.Equal(t, 35, result.TotalMenuCount)
	})

	t.Run("eggs reach the sandwich through two sub-recipes", func(t *testing.T) {
		result := e.Compute("Eggs")

		assert.Contains(t, result.AffectedMenuItems, "Spicy Chicken Sandwich")
		assert.Contains(t, result.Edges, models.Edge{From: "Eggs", To: "Mayo"})
		assert.Contains(t, result.Edges, models.Edge{From: "Mayo", To: "Spicy Mayo"})
		assert.Contains(t, result.Edges, models.Edge{From: "Spicy Mayo", To: "Spicy Chicken Sandwich"})
		assert.InDelta(t, 793.0, result.TotalRevenueRiskPerHour, 0.01)
	})

	t.Run("case does not matter", func(t *testing.T) {
		want := e.Compute("Lime")
		assert.Equal(t, want, e.Compute("LIME"))
		assert.Equal(t, want, e.Compute("lime"))
		assert.Equal(t, want, e.Compute(" lIMe "))
	})

	t.Run("non-ascii names fold case", func(t *testing.T) {
		result := e.Compute("JALAPEÑO")

		assert.Equal(t, "Jalapeño", result.Ingredient)
		assert.Contains(t, result.AffectedMenuItems, "Spicy Chicken Sandwich")
	})

	t.Run("repeated calls encode identically", func(t *testing.T) {
		first, err := json.Marshal(e.Compute("Tortilla"))
		require.NoError(t, err)
		second, err := json.Marshal(e.Compute("Tortilla"))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("concurrent callers see the same result", func(t *testing.T) {
		want := e.Compute("Cheese")

		var wg sync.WaitGroup
		results := make(chan models.BlastRadius, 32)
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- e.Compute("cheese")
			}()
		}
		wg.Wait()
		close(results)

		for got := range results {
			assert.Equal(t, want, got)
		}
	})
}

func TestComputeConvergingPaths(t *testing.T) {
	e := newEngine(t, models.Menu{
		MenuItems: []models.Recipe{
			{Name: "Combo", Requires: []string{"Salsa Verde", "Guac"}, RevenuePerHour: 60},
			{Name: "Agua Fresca", Requires: []string{"Lime", "Lime"}, RevenuePerHour: 20},
		},
		SubRecipes: []models.Recipe{
			{Name: "Salsa Verde", Requires: []string{"Lime"}},
			{Name: "Guac", Requires: []string{"Lime"}},
		},
	})

	result := e.Compute("Lime")

	assert.Equal(t, []string{"Lime", "Guac", "Combo", "Salsa Verde", "Agua Fresca"}, nodeIDs(result.Nodes))
	assert.Equal(t, []models.Edge{
		{From: "Lime", To: "Agua Fresca"},
		{From: "Lime", To: "Agua Fresca"},
		{From: "Lime", To: "Salsa Verde"},
		{From: "Lime", To: "Guac"},
		{From: "Guac", To: "Combo"},
		{From: "Salsa Verde", To: "Combo"},
	}, result.Edges)
	assert.Equal(t, []string{"Combo", "Agua Fresca"}, result.AffectedMenuItems)
	assert.Equal(t, 80.0, result.TotalRevenueRiskPerHour)
}

func TestComputeCycle(t *testing.T) {
	e := newEngine(t, models.Menu{
		MenuItems: []models.Recipe{
			{Name: "Plate", Requires: []string{"A"}, RevenuePerHour: 10},
		},
		SubRecipes: []models.Recipe{
			{Name: "A", Requires: []string{"B"}},
			{Name: "B", Requires: []string{"A"}},
		},
	})

	t.Run("from A", func(t *testing.T) {
		result := e.Compute("A")

		assert.ElementsMatch(t, []string{"A", "B", "Plate"}, nodeIDs(result.Nodes))
		assert.Equal(t, 10.0, result.TotalRevenueRiskPerHour)
	})

	t.Run("from B", func(t *testing.T) {
		result := e.Compute("B")

		assert.Equal(t, []string{"B", "A", "Plate"}, nodeIDs(result.Nodes))
		assert.Equal(t, []models.Edge{
			{From: "B", To: "A"},
			{From: "A", To: "Plate"},
			{From: "A", To: "B"},
		}, result.Edges)
	})
}

func TestClassify(t *testing.T) {
	e := newEngine(t, sandwichMenu())

	assert.Equal(t, models.KindMenuItem, e.Classify("Sandwich"))
	assert.Equal(t, models.KindSubRecipe, e.Classify("Mayo"))
	assert.Equal(t, models.KindIngredient, e.Classify("Oil"))
	assert.Equal(t, models.KindIngredient, e.Classify("never declared"))
	assert.Equal(t, models.KindIngredient, e.Classify("sandwich"))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 295.0, roundCents(200+95))
	assert.Equal(t, 0.1, roundCents(0.1+0.2-0.2))
	assert.Equal(t, 1.01, roundCents(1.005000001))
	assert.Equal(t, 0.0, roundCents(0))
}
