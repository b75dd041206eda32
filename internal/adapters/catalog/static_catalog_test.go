package catalog

import (
	"testing"
)

func TestNewStaticCatalogLoadsBundledEntries(t *testing.T) {
	c, err := NewStaticCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := c.Entries()
	if len(entries) != 21 {
		t.Fatalf("expected 21 institutions, got %d", len(entries))
	}

	seen := map[string]bool{}
	for _, e := range entries {
		if e.Name == "" || e.Address == "" || e.Website == "" || e.Phone == "" {
			t.Fatalf("incomplete entry: %+v", e)
		}
		if e.Lat < -90 || e.Lat > 90 || e.Lon < -180 || e.Lon > 180 {
			t.Fatalf("coordinates out of range for %s: %v,%v", e.Name, e.Lat, e.Lon)
		}
		if len(e.Categories) == 0 {
			t.Fatalf("expected categories for %s", e.Name)
		}
		if seen[e.Name] {
			t.Fatalf("duplicate entry %s", e.Name)
		}
		seen[e.Name] = true
	}

	for _, name := range []string{"Indian Institute of Technology Bombay", "University of Mumbai", "Delhi University"} {
		if !seen[name] {
			t.Fatalf("expected catalog to contain %s", name)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	c, err := NewStaticCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := c.Entries()
	first[0].Name = "mutated"

	if c.Entries()[0].Name == "mutated" {
		t.Fatal("expected Entries to return an independent slice")
	}
}

func TestParseRejectsMalformedData(t *testing.T) {
	if _, err := Parse([]byte(`{"not":"an array"}`)); err == nil {
		t.Fatal("expected error for non-array catalog")
	}
	if _, err := Parse([]byte(`[{"address":"x"}]`)); err == nil {
		t.Fatal("expected error for entry without name")
	}
}
