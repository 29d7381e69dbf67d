package store

import "github.com/holymole/core/internal/models"

// seedIngredients is the Tex-Mex starting inventory written by Seed.
var seedIngredients = []models.Ingredient{
	// Produce
	{Name: "Avocados", Category: "Produce", Quantity: 100, Unit: "count", UnitCost: 0.85, ParLevel: 50, DailyUsage: 30},
	{Name: "Lime", Category: "Produce", Quantity: 80, Unit: "count", UnitCost: 0.2, ParLevel: 40, DailyUsage: 35},
	{Name: "Cilantro", Category: "Produce", Quantity: 25, Unit: "bunch", UnitCost: 0.75, ParLevel: 12, DailyUsage: 10},
	{Name: "Onion", Category: "Produce", Quantity: 60, Unit: "count", UnitCost: 0.35, ParLevel: 30, DailyUsage: 25},
	{Name: "Tomato", Category: "Produce", Quantity: 90, Unit: "count", UnitCost: 0.45, ParLevel: 45, DailyUsage: 40},
	{Name: "Jalapeño", Category: "Produce", Quantity: 50, Unit: "count", UnitCost: 0.15, ParLevel: 25, DailyUsage: 20},
	{Name: "Bell Pepper", Category: "Produce", Quantity: 40, Unit: "count", UnitCost: 0.8, ParLevel: 20, DailyUsage: 15},
	{Name: "Corn", Category: "Produce", Quantity: 24, Unit: "ear", UnitCost: 0.4, ParLevel: 12, DailyUsage: 10},
	{Name: "Garlic", Category: "Produce", Quantity: 20, Unit: "head", UnitCost: 0.5, ParLevel: 10, DailyUsage: 8},
	{Name: "Lettuce", Category: "Produce", Quantity: 15, Unit: "head", UnitCost: 1.2, ParLevel: 8, DailyUsage: 6},
	{Name: "Cabbage", Category: "Produce", Quantity: 12, Unit: "head", UnitCost: 0.9, ParLevel: 6, DailyUsage: 5},
	{Name: "Cucumber", Category: "Produce", Quantity: 30, Unit: "count", UnitCost: 0.4, ParLevel: 15, DailyUsage: 12},
	{Name: "Radish", Category: "Produce", Quantity: 20, Unit: "bunch", UnitCost: 0.6, ParLevel: 10, DailyUsage: 8},
	{Name: "Mango", Category: "Produce", Quantity: 24, Unit: "count", UnitCost: 1, ParLevel: 12, DailyUsage: 10},
	{Name: "Pineapple", Category: "Produce", Quantity: 8, Unit: "count", UnitCost: 2.5, ParLevel: 4, DailyUsage: 3},
	// Protein
	{Name: "Steak", Category: "Protein", Quantity: 40, Unit: "lb", UnitCost: 8.5, ParLevel: 25, DailyUsage: 15},
	{Name: "Chicken", Category: "Protein", Quantity: 50, Unit: "lb", UnitCost: 3.25, ParLevel: 30, DailyUsage: 22},
	{Name: "Fish", Category: "Protein", Quantity: 25, Unit: "lb", UnitCost: 12, ParLevel: 15, DailyUsage: 10},
	{Name: "Shrimp", Category: "Protein", Quantity: 15, Unit: "lb", UnitCost: 14, ParLevel: 8, DailyUsage: 6},
	{Name: "Chorizo", Category: "Protein", Quantity: 20, Unit: "lb", UnitCost: 5.5, ParLevel: 10, DailyUsage: 8},
	{Name: "Ground Beef", Category: "Protein", Quantity: 35, Unit: "lb", UnitCost: 4.5, ParLevel: 20, DailyUsage: 15},
	{Name: "Pork", Category: "Protein", Quantity: 30, Unit: "lb", UnitCost: 3.8, ParLevel: 18, DailyUsage: 12},
	{Name: "Bacon", Category: "Protein", Quantity: 18, Unit: "lb", UnitCost: 6, ParLevel: 10, DailyUsage: 7},
	// Dairy
	{Name: "Eggs", Category: "Dairy", Quantity: 120, Unit: "count", UnitCost: 0.25, ParLevel: 60, DailyUsage: 48},
	{Name: "Cheese", Category: "Dairy", Quantity: 25, Unit: "lb", UnitCost: 4.5, ParLevel: 15, DailyUsage: 12},
	{Name: "Crema", Category: "Dairy", Quantity: 12, Unit: "quart", UnitCost: 3.5, ParLevel: 6, DailyUsage: 5},
	{Name: "Butter", Category: "Dairy", Quantity: 10, Unit: "lb", UnitCost: 4, ParLevel: 6, DailyUsage: 4},
	// Pantry
	{Name: "Tortilla", Category: "Pantry", Quantity: 200, Unit: "count", UnitCost: 0.08, ParLevel: 100, DailyUsage: 80},
	{Name: "Bun", Category: "Pantry", Quantity: 80, Unit: "count", UnitCost: 0.3, ParLevel: 40, DailyUsage: 35},
	{Name: "Rice", Category: "Pantry", Quantity: 25, Unit: "lb", UnitCost: 0.6, ParLevel: 15, DailyUsage: 10},
	{Name: "Black Beans", Category: "Pantry", Quantity: 15, Unit: "lb", UnitCost: 0.9, ParLevel: 10, DailyUsage: 6},
	{Name: "Pinto Beans", Category: "Pantry", Quantity: 15, Unit: "lb", UnitCost: 0.85, ParLevel: 10, DailyUsage: 6},
	{Name: "Chips", Category: "Pantry", Quantity: 24, Unit: "bag", UnitCost: 2.5, ParLevel: 12, DailyUsage: 10},
	{Name: "Flour", Category: "Pantry", Quantity: 50, Unit: "lb", UnitCost: 0.35, ParLevel: 25, DailyUsage: 8},
	{Name: "Potato", Category: "Produce", Quantity: 40, Unit: "lb", UnitCost: 0.45, ParLevel: 25, DailyUsage: 15},
	{Name: "Chili Powder", Category: "Pantry", Quantity: 5, Unit: "lb", UnitCost: 8, ParLevel: 3, DailyUsage: 0.5},
	// Condiments
	{Name: "Mayo", Category: "Condiments", Quantity: 6, Unit: "quart", UnitCost: 5, ParLevel: 4, DailyUsage: 2},
	{Name: "Salsa", Category: "Condiments", Quantity: 12, Unit: "quart", UnitCost: 4, ParLevel: 8, DailyUsage: 6},
	{Name: "Mole Sauce", Category: "Condiments", Quantity: 8, Unit: "quart", UnitCost: 6, ParLevel: 5, DailyUsage: 3},
	{Name: "Hot Sauce", Category: "Condiments", Quantity: 24, Unit: "bottle", UnitCost: 2, ParLevel: 12, DailyUsage: 8},
	// Spirits
	{Name: "Tequila", Category: "Spirits", Quantity: 12, Unit: "bottle", UnitCost: 18, ParLevel: 6, DailyUsage: 3},
	{Name: "Triple Sec", Category: "Spirits", Quantity: 8, Unit: "bottle", UnitCost: 12, ParLevel: 4, DailyUsage: 2},
	// Beverages
	{Name: "Grapefruit Soda", Category: "Beverages", Quantity: 24, Unit: "bottle", UnitCost: 1.5, ParLevel: 12, DailyUsage: 8},
	{Name: "Beer", Category: "Beverages", Quantity: 48, Unit: "case", UnitCost: 28, ParLevel: 24, DailyUsage: 18},
	{Name: "Clamato", Category: "Beverages", Quantity: 12, Unit: "bottle", UnitCost: 3.5, ParLevel: 6, DailyUsage: 4},
}
