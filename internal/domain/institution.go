package domain

import (
	"cmp"
	"slices"
)

// Institution is an educational institution located relative to a query origin.
// DistanceKm is computed per query and never stored on catalog entries.
type Institution struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Website    string   `json:"website"`
	Phone      string   `json:"phone"`
	DistanceKm float64  `json:"distance_km"`
	Categories []string `json:"categories"`
}

// CatalogEntry is a fixed institution record with its own coordinates.
// The coordinates are internal and are dropped when converted to an Institution.
type CatalogEntry struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Website    string   `json:"website"`
	Phone      string   `json:"phone"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Categories []string `json:"categories"`
}

func (e CatalogEntry) Location() GeoPoint {
	return GeoPoint{Latitude: e.Lat, Longitude: e.Lon}
}

// At converts the entry into an Institution at the given distance.
func (e CatalogEntry) At(distanceKm float64) Institution {
	return Institution{
		Name:       e.Name,
		Address:    e.Address,
		Website:    e.Website,
		Phone:      e.Phone,
		DistanceKm: distanceKm,
		Categories: slices.Clone(e.Categories),
	}
}

// SortByDistance orders institutions nearest first. Ties keep their input order.
func SortByDistance(items []Institution) {
	slices.SortStableFunc(items, func(a, b Institution) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
}

// Truncate caps items at limit. A non-positive limit means no cap.
func Truncate(items []Institution, limit int) []Institution {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
