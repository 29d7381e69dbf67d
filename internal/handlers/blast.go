// Package handlers serves the HTTP endpoints of the Holy Mole API.
// Every response body is JSON, indented when the request asks for ?pretty=true.
package handlers

import (
	"net/http"
)

// BlastRadius always answers 200: an unknown name yields an empty result, not
// an error.
func (h *Handler) BlastRadius(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	result := h.engine.Compute(name)
	h.metrics.ObserveBlastRadius(result)

	h.logger.Debug("blast radius computed",
		"name", name,
		"resolved", result.Ingredient,
		"nodes", len(result.Nodes),
		"revenue_at_risk", result.TotalRevenueRiskPerHour,
	)

	h.writeJSON(w, r, http.StatusOK, result)
}
