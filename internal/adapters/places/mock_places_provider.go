package places

import (
	"career-guidance-service/internal/domain"
	"context"
	"slices"
	"sync/atomic"
)

// MockPlacesProvider returns a fixed result or error and counts calls.
type MockPlacesProvider struct {
	items []domain.Institution
	err   error
	calls atomic.Int64
}

func NewMockPlacesProvider(items []domain.Institution, err error) *MockPlacesProvider {
	return &MockPlacesProvider{items: items, err: err}
}

func (p *MockPlacesProvider) FindInstitutions(ctx context.Context, q domain.QueryParameters) ([]domain.Institution, error) {
	p.calls.Add(1)

	if p.err != nil {
		return nil, p.err
	}

	return slices.Clone(p.items), nil
}

// Calls reports how many lookups were made.
func (p *MockPlacesProvider) Calls() int {
	return int(p.calls.Load())
}
