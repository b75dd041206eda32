package services

import (
	"career-guidance-service/internal/domain"
	"math"
)

const probeRadiusKm = 30.0

type probeTarget struct {
	Name  string
	Point domain.GeoPoint
}

// Fixed reference institutions used to sanity-check distance calculations.
var probeTargets = []probeTarget{
	{Name: "IIT Delhi", Point: domain.GeoPoint{Latitude: 28.5455, Longitude: 77.1923}},
	{Name: "IIT Hyderabad", Point: domain.GeoPoint{Latitude: 17.5926, Longitude: 78.1271}},
	{Name: "University of Hyderabad", Point: domain.GeoPoint{Latitude: 17.4590, Longitude: 78.3480}},
	{Name: "Osmania University", Point: domain.GeoPoint{Latitude: 17.4065, Longitude: 78.4772}},
}

type DistanceProbeResult struct {
	Name       string
	DistanceKm float64
	Within30Km bool
}

// ProbeDistances measures origin against the reference institutions.
// DistanceKm is rounded to one decimal; Within30Km uses the unrounded value.
func ProbeDistances(origin domain.GeoPoint) []DistanceProbeResult {
	out := make([]DistanceProbeResult, 0, len(probeTargets))
	for _, t := range probeTargets {
		d := domain.HaversineKm(origin, t.Point)
		out = append(out, DistanceProbeResult{
			Name:       t.Name,
			DistanceKm: math.Round(d*10) / 10,
			Within30Km: d <= probeRadiusKm,
		})
	}
	return out
}
