package dto

import "career-guidance-service/internal/domain"

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinates with presence tracking, so an explicit 0 differs from a missing field.
type OptionalLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Point returns the location when both coordinates are present.
func (l *OptionalLocation) Point() (domain.GeoPoint, bool) {
	if l == nil || l.Latitude == nil || l.Longitude == nil {
		return domain.GeoPoint{}, false
	}
	return domain.GeoPoint{Latitude: *l.Latitude, Longitude: *l.Longitude}, true
}

// PointOr returns the location, substituting def for each missing coordinate.
func (l *OptionalLocation) PointOr(def domain.GeoPoint) domain.GeoPoint {
	p := def
	if l == nil {
		return p
	}
	if l.Latitude != nil {
		p.Latitude = *l.Latitude
	}
	if l.Longitude != nil {
		p.Longitude = *l.Longitude
	}
	return p
}

type LocationResponse struct {
	Location Location             `json:"location"`
	Colleges []domain.Institution `json:"colleges"`
	Count    int                  `json:"count"`
}

type FallbackRequest struct {
	OptionalLocation
	RadiusKm *float64 `json:"radius_km"`
	Limit    *int     `json:"limit"`
}

type FallbackResponse struct {
	Location Location             `json:"location"`
	Colleges []domain.Institution `json:"colleges"`
	Count    int                  `json:"count"`
	RadiusKm float64              `json:"radius_km"`
}

type DistanceTestResult struct {
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
	Within30Km bool    `json:"within_30km"`
}

type DistanceTestResponse struct {
	UserLocation Location             `json:"user_location"`
	TestResults  []DistanceTestResult `json:"test_results"`
}

func NewLocation(p domain.GeoPoint) Location {
	return Location{Latitude: p.Latitude, Longitude: p.Longitude}
}
