// Package handlers serves the HTTP endpoints of the Holy Mole API.
// Every response body is JSON, indented when the request asks for ?pretty=true.
package handlers

import (
	"net/http"

	"github.com/holymole/core/internal/models"
)

type MenuResponse struct {
	MenuItems      []models.Recipe `json:"menu_items"`
	SubRecipes     []models.Recipe `json:"sub_recipes"`
	Nodes          []models.Node   `json:"nodes"`
	TotalMenuCount int             `json:"total_menu_count"`
}

func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	m := h.engine.Menu()
	h.writeJSON(w, r, http.StatusOK, MenuResponse{
		MenuItems:      m.MenuItems,
		SubRecipes:     m.SubRecipes,
		Nodes:          h.engine.Nodes(),
		TotalMenuCount: h.engine.TotalMenuCount(),
	})
}
