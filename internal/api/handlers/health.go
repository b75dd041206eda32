package handlers

import (
	"net/http"
)

type HealthHandler struct {
	LivePlaces  bool
	PlacesCache bool
}

// Health provides a liveness check that also reports which optional integrations are active.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := struct {
		Status      string `json:"status"`
		LivePlaces  bool   `json:"live_places"`
		PlacesCache bool   `json:"places_cache"`
	}{
		Status:      "ok",
		LivePlaces:  h.LivePlaces,
		PlacesCache: h.PlacesCache,
	}
	writeJSON(w, r, http.StatusOK, res)
}
