package places

import (
	"career-guidance-service/internal/domain"
	"slices"
	"strings"
)

var (
	educationCategories = []string{"education", "university", "college", "school"}
	educationKeywords   = []string{"university", "college", "school", "education", "institute", "academy"}
)

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties featureProperties `json:"properties"`
}

type featureProperties struct {
	Name         *string  `json:"name"`
	Formatted    string   `json:"formatted"`
	AddressLine2 string   `json:"address_line2"`
	Website      string   `json:"website"`
	Phone        string   `json:"phone"`
	Distance     float64  `json:"distance"`
	Categories   []string `json:"categories"`
	Contact      struct {
		Phone string `json:"phone"`
	} `json:"contact"`
}

// categoryStage keeps features tagged with an education category.
func categoryStage(features []feature) []domain.Institution {
	out := make([]domain.Institution, 0, len(features))
	for _, f := range features {
		if hasEducationCategory(f.Properties.Categories, false) {
			out = append(out, toInstitution(f.Properties))
		}
	}
	return out
}

// keywordStage keeps features whose name reads like a school or that carry an
// education category, compared case-insensitively.
func keywordStage(features []feature) []domain.Institution {
	out := make([]domain.Institution, 0, len(features))
	for _, f := range features {
		p := f.Properties
		if hasEducationKeyword(featureName(p)) || hasEducationCategory(p.Categories, true) {
			out = append(out, toInstitution(p))
		}
	}
	return out
}

func hasEducationCategory(categories []string, foldCase bool) bool {
	for _, c := range categories {
		if foldCase {
			c = strings.ToLower(c)
		}
		if slices.Contains(educationCategories, c) {
			return true
		}
	}
	return false
}

func hasEducationKeyword(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range educationKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func featureName(p featureProperties) string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

func toInstitution(p featureProperties) domain.Institution {
	n := "Unknown"
	if p.Name != nil {
		n = *p.Name
	}

	address := p.Formatted
	if address == "" {
		address = p.AddressLine2
	}

	phone := p.Phone
	if phone == "" {
		phone = p.Contact.Phone
	}

	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}

	return domain.Institution{
		Name:       n,
		Address:    address,
		Website:    p.Website,
		Phone:      phone,
		DistanceKm: p.Distance / 1000,
		Categories: categories,
	}
}
