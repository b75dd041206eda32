package places

import (
	"career-guidance-service/internal/domain"
	"career-guidance-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.geoapify.com"

	categoryQuery = "education,university,college"
	keywordQuery  = "university college school education"
)

// GeoapifyProvider implements PlacesProvider using the Geoapify Places API.
//
// A lookup runs in two stages:
//   - a category search kept only where results carry an education category
//   - if that leaves nothing, a free-text search kept where the name or
//     categories look educational
//
// The provider is safe for concurrent use.
type GeoapifyProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGeoapifyProvider(apiKey, baseURL string) (*GeoapifyProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("geoapify api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &GeoapifyProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// FindInstitutions returns educational institutions around q.Origin.
// An empty result with a nil error means both stages found nothing.
func (g *GeoapifyProvider) FindInstitutions(
	ctx context.Context,
	q domain.QueryParameters,
) ([]domain.Institution, error) {
	params := g.baseParams(q)
	params.Set("categories", categoryQuery)
	params.Set("type", "amenity")

	fc, err := g.search(ctx, "geoapify.categorySearch", params)
	if err != nil {
		return nil, fmt.Errorf("geoapify category search: %w", err)
	}

	found := categoryStage(fc.Features)
	if len(found) > 0 {
		return found, nil
	}

	slog.InfoContext(ctx, "category search found no institutions, retrying with keyword search",
		"features", len(fc.Features),
	)

	params = g.baseParams(q)
	params.Set("text", keywordQuery)

	fc, err = g.search(ctx, "geoapify.keywordSearch", params)
	if err != nil {
		return nil, fmt.Errorf("geoapify keyword search: %w", err)
	}

	found = keywordStage(fc.Features)
	if len(found) == 0 {
		slog.InfoContext(ctx, "keyword search found no institutions", "features", len(fc.Features))
	}

	return found, nil
}

func (g *GeoapifyProvider) baseParams(q domain.QueryParameters) url.Values {
	params := url.Values{}
	params.Set("filter", fmt.Sprintf("circle:%s,%s,%s",
		formatFloat(q.Origin.Longitude),
		formatFloat(q.Origin.Latitude),
		formatFloat(q.RadiusMeters()),
	))
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	params.Set("lang", "en")
	return params
}

func (g *GeoapifyProvider) search(
	ctx context.Context,
	op string,
	params url.Values,
) (_ featureCollection, err error) {
	defer obs.Time(ctx, op)(&err)

	req, err := g.newRequest(ctx, params)
	if err != nil {
		return featureCollection{}, err
	}

	resp, err := g.do(req)
	if err != nil {
		return featureCollection{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return featureCollection{}, fmt.Errorf("decode places response: %w", err)
	}

	return decoded, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
