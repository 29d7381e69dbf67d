// Package handlers serves the HTTP endpoints of the Holy Mole API.
// Every response body is JSON, indented when the request asks for ?pretty=true.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/holymole/core/internal/models"
	"github.com/holymole/core/internal/store"
)

type RestockResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	models.RestockResult
}

func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.store.List(r.Context())
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "Failed to load inventory.", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, ingredients)
}

func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Seed(r.Context())
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "Failed to seed inventory.", err)
		return
	}
	h.metrics.InventoryMutation("seed")
	h.logger.Info("inventory reseeded", "ingredients", n)

	h.writeJSON(w, r, http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "Database reseeded with Tex-Mex ingredients.",
		Count:   n,
	})
}

func (h *Handler) SimulateRush(w http.ResponseWriter, r *http.Request) {
	h.rngMu.Lock()
	updates, err := h.store.SimulateRush(r.Context(), h.rng)
	h.rngMu.Unlock()
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "Failed to simulate rush.", err)
		return
	}

	if len(updates) == 0 {
		h.writeJSON(w, r, http.StatusOK, StatusResponse{Status: "ok", Message: "No ingredients to simulate."})
		return
	}
	h.metrics.InventoryMutation("rush")
	h.logger.Info("rush simulated", "updated", len(updates))

	h.writeJSON(w, r, http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "Rush simulated.",
		Updated: updates,
	})
}

func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)

	result, err := h.store.Restock(r.Context(), name)
	if errors.Is(err, store.ErrIngredientNotFound) {
		h.writeError(w, r, http.StatusNotFound, fmt.Sprintf("Ingredient '%s' not found.", name), nil)
		return
	}
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "Failed to restock ingredient.", err)
		return
	}
	h.metrics.InventoryMutation("restock")
	h.logger.Info("ingredient restocked", "ingredient", result.Ingredient, "total_cost", result.TotalCost)

	h.writeJSON(w, r, http.StatusOK, RestockResponse{
		Status:        "ok",
		Message:       fmt.Sprintf("Successfully restocked %s.", result.Ingredient),
		RestockResult: result,
	})
}
