package domain

const (
	DefaultRadiusKm = 30.0
	DefaultLimit    = 10
)

// Parameters of a nearby-institution search.
// A non-positive Limit leaves the result uncapped.
type QueryParameters struct {
	Origin   GeoPoint
	RadiusKm float64
	Limit    int
}

// NewQuery builds QueryParameters, substituting defaults for non-positive radius.
func NewQuery(origin GeoPoint, radiusKm float64, limit int) QueryParameters {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	return QueryParameters{Origin: origin, RadiusKm: radiusKm, Limit: limit}
}

// RadiusMeters returns the search radius in meters, as external place APIs expect.
func (q QueryParameters) RadiusMeters() float64 {
	return q.RadiusKm * 1000
}
