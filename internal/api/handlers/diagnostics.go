package handlers

import (
	"career-guidance-service/internal/api/dto"
	"career-guidance-service/internal/domain"
	"career-guidance-service/internal/services"
	"net/http"
)

var (
	defaultFallbackOrigin = domain.GeoPoint{Latitude: 19.0760, Longitude: 72.8777}
	defaultProbeOrigin    = domain.GeoPoint{Latitude: 17.4260224, Longitude: 78.6464768}
)

// DiagnosticsHandler exposes the location pipeline pieces for manual checks.
type DiagnosticsHandler struct {
	Places   *services.PlacesLookup
	Fallback *services.FallbackLocator
	RadiusKm float64
	Limit    int
}

// TestLocation runs the full live-then-fallback lookup for a required location.
func (h *DiagnosticsHandler) TestLocation(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.OptionalLocation
	if !decodeBody(w, r, &req) {
		return
	}

	origin, ok := req.Point()
	if !ok {
		writeError(w, r, http.StatusBadRequest, "latitude and longitude required")
		return
	}

	colleges := h.Places.Find(r.Context(), domain.NewQuery(origin, h.RadiusKm, h.Limit))

	writeJSON(w, r, http.StatusOK, dto.LocationResponse{
		Location: dto.NewLocation(origin),
		Colleges: colleges,
		Count:    len(colleges),
	})
}

// TestFallback queries the static catalog directly. Missing fields default to
// central Mumbai and the standard radius; the result is uncapped unless limit is set.
func (h *DiagnosticsHandler) TestFallback(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.FallbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	origin := req.PointOr(defaultFallbackOrigin)

	radius := domain.DefaultRadiusKm
	if req.RadiusKm != nil {
		radius = *req.RadiusKm
	}
	if radius < 0 {
		writeError(w, r, http.StatusBadRequest, "radius_km must not be negative")
		return
	}

	limit := 0
	if req.Limit != nil {
		limit = *req.Limit
	}

	colleges := h.Fallback.Locate(r.Context(), origin, radius, limit)

	writeJSON(w, r, http.StatusOK, dto.FallbackResponse{
		Location: dto.NewLocation(origin),
		Colleges: colleges,
		Count:    len(colleges),
		RadiusKm: radius,
	})
}

// TestDistance reports distances from a location (default Hyderabad) to fixed reference institutions.
func (h *DiagnosticsHandler) TestDistance(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.OptionalLocation
	if !decodeBody(w, r, &req) {
		return
	}

	origin := req.PointOr(defaultProbeOrigin)

	probes := services.ProbeDistances(origin)
	results := make([]dto.DistanceTestResult, 0, len(probes))
	for _, p := range probes {
		results = append(results, dto.DistanceTestResult{
			Name:       p.Name,
			DistanceKm: p.DistanceKm,
			Within30Km: p.Within30Km,
		})
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceTestResponse{
		UserLocation: dto.NewLocation(origin),
		TestResults:  results,
	})
}
