package ports

import "career-guidance-service/internal/domain"

// Port: a fixed list of institutions used when no live lookup is possible.
type InstitutionCatalog interface {
	Entries() []domain.CatalogEntry
}
