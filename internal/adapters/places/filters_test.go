package places

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func TestCategoryStageKeepsEducationCategories(t *testing.T) {
	features := []feature{
		{Properties: featureProperties{Name: strPtr("Osmania University"), Distance: 12500, Categories: []string{"education", "education.university"}}},
		{Properties: featureProperties{Name: strPtr("City Cafe"), Distance: 200, Categories: []string{"catering.cafe"}}},
		{Properties: featureProperties{Name: strPtr("Upper Case"), Categories: []string{"University"}}},
	}

	got := categoryStage(features)
	if len(got) != 1 {
		t.Fatalf("expected 1 institution, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Osmania University" {
		t.Fatalf("unexpected institution %q", got[0].Name)
	}
	if got[0].DistanceKm != 12.5 {
		t.Fatalf("expected distance converted to 12.5 km, got %v", got[0].DistanceKm)
	}
}

func TestKeywordStageMatchesNameOrCategory(t *testing.T) {
	features := []feature{
		{Properties: featureProperties{Name: strPtr("Greenfield ACADEMY"), Categories: []string{"building"}}},
		{Properties: featureProperties{Name: strPtr("Somewhere"), Categories: []string{"School"}}},
		{Properties: featureProperties{Name: strPtr("Bus Depot"), Categories: []string{"public_transport"}}},
		{Properties: featureProperties{Categories: []string{"commercial"}}},
	}

	got := keywordStage(features)
	if len(got) != 2 {
		t.Fatalf("expected 2 institutions, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Greenfield ACADEMY" || got[1].Name != "Somewhere" {
		t.Fatalf("unexpected institutions: %+v", got)
	}
}

func TestKeywordStageMatchesEducationInName(t *testing.T) {
	features := []feature{
		{Properties: featureProperties{Name: strPtr("Sunrise Education Centre"), Categories: []string{"building"}}},
	}

	got := keywordStage(features)
	if len(got) != 1 || got[0].Name != "Sunrise Education Centre" {
		t.Fatalf("expected education centre to match by name, got %+v", got)
	}
}

func TestToInstitutionDefaults(t *testing.T) {
	p := featureProperties{AddressLine2: "Road 7, Hyderabad"}
	p.Contact.Phone = "+91-40-0000"

	got := toInstitution(p)

	if got.Name != "Unknown" {
		t.Fatalf("expected default name Unknown, got %q", got.Name)
	}
	if got.Address != "Road 7, Hyderabad" {
		t.Fatalf("expected address_line2 fallback, got %q", got.Address)
	}
	if got.Phone != "+91-40-0000" {
		t.Fatalf("expected contact phone fallback, got %q", got.Phone)
	}
	if got.Categories == nil {
		t.Fatal("expected non-nil categories")
	}
}

func TestToInstitutionPrefersFormattedAddress(t *testing.T) {
	got := toInstitution(featureProperties{
		Name:         strPtr("Anna University"),
		Formatted:    "Sardar Patel Rd, Guindy, Chennai",
		AddressLine2: "Guindy",
		Phone:        "+91-44-2235-7120",
	})

	if got.Address != "Sardar Patel Rd, Guindy, Chennai" {
		t.Fatalf("expected formatted address, got %q", got.Address)
	}
	if got.Phone != "+91-44-2235-7120" {
		t.Fatalf("unexpected phone %q", got.Phone)
	}
}
