// Package handlers serves the HTTP endpoints of the Holy Mole API.
// Every response body is JSON, indented when the request asks for ?pretty=true.
package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/holymole/core/internal/blastradius"
	"github.com/holymole/core/internal/menu"
	"github.com/holymole/core/internal/metrics"
	"github.com/holymole/core/internal/models"
	"github.com/holymole/core/internal/store"
)

type fakeStore struct {
	mu          sync.Mutex
	ingredients []models.Ingredient
	err         error
	rushCalls   int
}

func (f *fakeStore) List(context.Context) ([]models.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Ingredient{}, f.ingredients...), nil
}

func (f *fakeStore) Seed(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.ingredients = []models.Ingredient{
		{ID: 1, Name: "Lime", Category: "Produce", Quantity: 80, Unit: "count", UnitCost: 0.2, ParLevel: 40, DailyUsage: 35},
		{ID: 2, Name: "Eggs", Category: "Dairy", Quantity: 120, Unit: "count", UnitCost: 0.25, ParLevel: 60, DailyUsage: 48},
	}
	return len(f.ingredients), nil
}

func (f *fakeStore) SimulateRush(_ context.Context, rng *rand.Rand) ([]models.StockUpdate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rushCalls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.ingredients) == 0 {
		return []models.StockUpdate{}, nil
	}
	i := rng.IntN(len(f.ingredients))
	f.ingredients[i].Quantity /= 2
	return []models.StockUpdate{{Name: f.ingredients[i].Name, Quantity: f.ingredients[i].Quantity}}, nil
}

func (f *fakeStore) Restock(_ context.Context, name string) (models.RestockResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.RestockResult{}, f.err
	}
	for i, ing := range f.ingredients {
		if strings.EqualFold(ing.Name, name) {
			added := ing.ParLevel*2 - ing.Quantity
			f.ingredients[i].Quantity = ing.ParLevel * 2
			return models.RestockResult{
				Ingredient:    ing.Name,
				OldQuantity:   ing.Quantity,
				NewQuantity:   ing.ParLevel * 2,
				QuantityAdded: added,
				Unit:          ing.Unit,
				UnitCost:      ing.UnitCost,
				TotalCost:     added * ing.UnitCost,
			}, nil
		}
	}
	return models.RestockResult{}, store.ErrIngredientNotFound
}

var errBroken = errors.New("disk on fire")

func newTestHandler(t *testing.T, s InventoryStore) *Handler {
	t.Helper()
	m, err := menu.Default()
	require.NoError(t, err)
	return newMenuHandler(t, *m, s)
}

func newMenuHandler(t *testing.T, m models.Menu, s InventoryStore) *Handler {
	t.Helper()
	engine, err := blastradius.New(m)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(engine, s, metrics.New(prometheus.NewRegistry()), logger, rand.New(rand.NewPCG(1, 1)))
}

func newTestRouter(t *testing.T, s InventoryStore) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	newTestHandler(t, s).Mount(r)
	return r
}
