package services

import (
	"career-guidance-service/internal/adapters/catalog"
	"career-guidance-service/internal/domain"
	"context"
	"testing"
)

var mumbai = domain.GeoPoint{Latitude: 19.0760, Longitude: 72.8777}

func newBundledLocator(t *testing.T) *FallbackLocator {
	t.Helper()

	c, err := catalog.NewStaticCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return NewFallbackLocator(c)
}

func names(items []domain.Institution) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, it := range items {
		out[it.Name] = true
	}
	return out
}

func TestFallbackLocatorMumbai(t *testing.T) {
	f := newBundledLocator(t)

	got := f.Locate(context.Background(), mumbai, 30, 0)
	found := names(got)

	if !found["Indian Institute of Technology Bombay"] {
		t.Fatalf("expected IIT Bombay in %v", found)
	}
	if !found["University of Mumbai"] {
		t.Fatalf("expected University of Mumbai in %v", found)
	}
	if found["Delhi University"] {
		t.Fatalf("did not expect Delhi University in %v", found)
	}

	if got[0].Name != "University of Mumbai" || got[0].DistanceKm != 0 {
		t.Fatalf("expected coincident University of Mumbai first, got %+v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].DistanceKm > got[i].DistanceKm {
			t.Fatalf("results not sorted by distance: %+v", got)
		}
	}
}

func TestFallbackLocatorNeverExceedsRadius(t *testing.T) {
	f := newBundledLocator(t)

	for _, radius := range []float64{0, 5, 10, 30, 120, 2000} {
		for _, it := range f.Locate(context.Background(), mumbai, radius, 0) {
			if it.DistanceKm > radius {
				t.Fatalf("radius %v: %s at %v km", radius, it.Name, it.DistanceKm)
			}
		}
	}
}

func TestFallbackLocatorMonotonicInRadius(t *testing.T) {
	f := newBundledLocator(t)
	origin := domain.GeoPoint{Latitude: 17.4260224, Longitude: 78.6464768}

	prev := map[string]bool{}
	for _, radius := range []float64{0, 10, 20, 30, 60, 500, 1500, 5000} {
		cur := names(f.Locate(context.Background(), origin, radius, 0))
		for n := range prev {
			if !cur[n] {
				t.Fatalf("radius %v dropped %s found at a smaller radius", radius, n)
			}
		}
		prev = cur
	}
}

type fixedCatalog []domain.CatalogEntry

func (c fixedCatalog) Entries() []domain.CatalogEntry { return c }

func TestFallbackLocatorBoundaryInclusive(t *testing.T) {
	origin := domain.GeoPoint{Latitude: 0, Longitude: 0}
	entry := domain.CatalogEntry{Name: "Edge College", Lat: 0, Lon: 1}
	exact := domain.HaversineKm(origin, entry.Location())

	f := NewFallbackLocator(fixedCatalog{entry})

	if got := f.Locate(context.Background(), origin, exact, 0); len(got) != 1 {
		t.Fatalf("expected entry exactly at radius to be included, got %+v", got)
	}
	if got := f.Locate(context.Background(), origin, exact-0.001, 0); len(got) != 0 {
		t.Fatalf("expected entry beyond radius to be excluded, got %+v", got)
	}
}

func TestFallbackLocatorLimitAndEmpty(t *testing.T) {
	f := newBundledLocator(t)

	all := f.Locate(context.Background(), mumbai, 30, 0)
	if len(all) < 3 {
		t.Fatalf("expected at least 3 Mumbai institutions, got %d", len(all))
	}

	capped := f.Locate(context.Background(), mumbai, 30, 2)
	if len(capped) != 2 {
		t.Fatalf("expected 2 institutions with limit, got %d", len(capped))
	}
	if capped[0].Name != all[0].Name || capped[1].Name != all[1].Name {
		t.Fatalf("expected the nearest institutions to survive the cap")
	}

	remote := f.Locate(context.Background(), domain.GeoPoint{Latitude: -45, Longitude: -120}, 30, 10)
	if remote == nil || len(remote) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", remote)
	}
}
