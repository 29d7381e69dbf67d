// Package handlers serves the HTTP endpoints of the Holy Mole API.
// Every response body is JSON, indented when the request asks for ?pretty=true.
package handlers

import "github.com/go-chi/chi/v5"

// Mount registers every endpoint on r. Names are taken from the wildcard so
// they may contain slashes.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/health", HealthHandler)
	r.Get("/menu", h.Menu)
	r.Get("/blast-radius/*", h.BlastRadius)
	r.Get("/inventory", h.Inventory)
	r.Post("/seed", h.Seed)
	r.Post("/simulate-rush", h.SimulateRush)
	r.Post("/restock/*", h.Restock)
}
