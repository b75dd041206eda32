package catalog

import (
	"career-guidance-service/internal/domain"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
)

//go:embed institutions.json
var institutionsJSON []byte

// StaticCatalog is an immutable, in-memory list of well-known institutions.
// It is safe for concurrent use since entries are never mutated after load.
type StaticCatalog struct {
	entries []domain.CatalogEntry
}

// NewStaticCatalog returns the catalog bundled with the binary.
func NewStaticCatalog() (*StaticCatalog, error) {
	return Parse(institutionsJSON)
}

// Parse builds a catalog from a JSON array of entries.
func Parse(data []byte) (*StaticCatalog, error) {
	var entries []domain.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse institution catalog: %w", err)
	}

	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("parse institution catalog: entry %d has no name", i)
		}
		if e.Categories == nil {
			entries[i].Categories = []string{}
		}
	}

	return &StaticCatalog{entries: entries}, nil
}

// Entries returns a copy of the catalog in its fixed order.
func (c *StaticCatalog) Entries() []domain.CatalogEntry {
	return slices.Clone(c.entries)
}
