// Package store keeps live ingredient stock in SQLite. It knows nothing about
// the composition graph; the blast-radius engine never reads from it.
package store

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/holymole/core/internal/models"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

const (
	rushMaxIngredients = 3
	rushMinCut         = 0.10
	rushMaxCut         = 0.40
	restockParMultiple = 2
)

type SqliteStore struct {
	db *sql.DB
}

// OpenSqlite opens or creates the inventory database at path and makes sure
// the schema exists.
func OpenSqlite(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Writers are serialized by SQLite anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			quantity REAL NOT NULL DEFAULT 0,
			unit TEXT NOT NULL,
			unit_cost REAL NOT NULL DEFAULT 0,
			par_level REAL NOT NULL DEFAULT 0,
			daily_usage REAL NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_ingredients_name ON ingredients(name);`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

// List returns every ingredient, those below par first, then the ones that
// will run out soonest.
func (s *SqliteStore) List(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := queryIngredients(ctx, s.db)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(ingredients, func(a, b models.Ingredient) int {
		if a.Critical() != b.Critical() {
			if a.Critical() {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.DaysOnHand(), b.DaysOnHand())
	})
	return ingredients, nil
}

func (s *SqliteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ingredients").Scan(&n); err != nil {
		return 0, fmt.Errorf("count ingredients: %w", err)
	}
	return n, nil
}

// Seed replaces the whole inventory with the Tex-Mex starting set.
func (s *SqliteStore) Seed(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM ingredients"); err != nil {
		return 0, fmt.Errorf("clear ingredients: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO ingredients (name, category, quantity, unit, unit_cost, par_level, daily_usage)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, ing := range seedIngredients {
		if _, err := stmt.ExecContext(ctx, ing.Name, ing.Category, ing.Quantity, ing.Unit, ing.UnitCost, ing.ParLevel, ing.DailyUsage); err != nil {
			return 0, fmt.Errorf("insert %s: %w", ing.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return len(seedIngredients), nil
}

// SimulateRush cuts the stock of one to three random ingredients by 10-40%.
func (s *SqliteStore) SimulateRush(ctx context.Context, rng *rand.Rand) ([]models.StockUpdate, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin rush: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ingredients, err := queryIngredients(ctx, tx)
	if err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		return []models.StockUpdate{}, nil
	}

	n := min(rng.IntN(rushMaxIngredients)+1, len(ingredients))
	updates := make([]models.StockUpdate, 0, n)
	for _, i := range rng.Perm(len(ingredients))[:n] {
		ing := ingredients[i]
		cut := rushMinCut + rng.Float64()*(rushMaxCut-rushMinCut)
		qty := round2(math.Max(0, ing.Quantity*(1-cut)))

		if _, err := tx.ExecContext(ctx, "UPDATE ingredients SET quantity = ? WHERE id = ?", qty, ing.ID); err != nil {
			return nil, fmt.Errorf("update %s: %w", ing.Name, err)
		}
		updates = append(updates, models.StockUpdate{Name: ing.Name, Quantity: qty})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit rush: %w", err)
	}
	return updates, nil
}

// Restock brings the named ingredient up to twice its par level. The name is
// matched without regard to case.
func (s *SqliteStore) Restock(ctx context.Context, name string) (models.RestockResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.RestockResult{}, fmt.Errorf("begin restock: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ingredients, err := queryIngredients(ctx, tx)
	if err != nil {
		return models.RestockResult{}, err
	}

	idx := slices.IndexFunc(ingredients, func(i models.Ingredient) bool {
		return strings.EqualFold(i.Name, strings.TrimSpace(name))
	})
	if idx < 0 {
		return models.RestockResult{}, fmt.Errorf("%q: %w", name, ErrIngredientNotFound)
	}
	ing := ingredients[idx]

	newQty := ing.ParLevel * restockParMultiple
	added := newQty - ing.Quantity

	if _, err := tx.ExecContext(ctx, "UPDATE ingredients SET quantity = ? WHERE id = ?", round2(newQty), ing.ID); err != nil {
		return models.RestockResult{}, fmt.Errorf("update %s: %w", ing.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return models.RestockResult{}, fmt.Errorf("commit restock: %w", err)
	}

	return models.RestockResult{
		Ingredient:    ing.Name,
		OldQuantity:   round2(ing.Quantity),
		NewQuantity:   round2(newQty),
		QuantityAdded: round2(added),
		Unit:          ing.Unit,
		UnitCost:      ing.UnitCost,
		TotalCost:     round2(added * ing.UnitCost),
	}, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryIngredients(ctx context.Context, q querier) ([]models.Ingredient, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, name, category, quantity, unit, unit_cost, par_level, daily_usage
		 FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []models.Ingredient{}
	for rows.Next() {
		var i models.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Category, &i.Quantity, &i.Unit, &i.UnitCost, &i.ParLevel, &i.DailyUsage); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return ingredients, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
