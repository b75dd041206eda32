package services

import (
	"career-guidance-service/internal/domain"
	"testing"
)

func TestProbeDistancesFromHyderabad(t *testing.T) {
	got := ProbeDistances(domain.GeoPoint{Latitude: 17.4260224, Longitude: 78.6464768})

	want := []DistanceProbeResult{
		{Name: "IIT Delhi", DistanceKm: 1245.3, Within30Km: false},
		{Name: "IIT Hyderabad", DistanceKm: 58.1, Within30Km: false},
		{Name: "University of Hyderabad", DistanceKm: 31.9, Within30Km: false},
		{Name: "Osmania University", DistanceKm: 18.1, Within30Km: true},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestProbeDistancesAtTarget(t *testing.T) {
	got := ProbeDistances(domain.GeoPoint{Latitude: 17.4590, Longitude: 78.3480})

	if got[2].DistanceKm != 0 || !got[2].Within30Km {
		t.Fatalf("expected zero distance to own location, got %+v", got[2])
	}
}
