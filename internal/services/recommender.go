package services

import (
	"career-guidance-service/internal/domain"
	"career-guidance-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var ErrNoAnswers = errors.New("no answers provided")

type RecommendRequest struct {
	Answers  map[string]any
	Location *domain.GeoPoint
}

// Recommender turns quiz answers into career and course recommendations
// and attaches nearby institutions when a location is supplied.
type Recommender struct {
	Generator ports.ContentGenerator
	Places    *PlacesLookup
	RadiusKm  float64
	Limit     int
}

func NewRecommender(generator ports.ContentGenerator, places *PlacesLookup, radiusKm float64, limit int) *Recommender {
	return &Recommender{
		Generator: generator,
		Places:    places,
		RadiusKm:  radiusKm,
		Limit:     limit,
	}
}

// Recommend runs one quiz submission end to end.
//
// Errors:
//   - ErrNoAnswers when answers is empty
//   - *ModelOutputError when the model reply is not the expected JSON object
//   - any generator error, wrapped
func (r *Recommender) Recommend(ctx context.Context, req RecommendRequest) (domain.RecommendationResult, error) {
	if len(req.Answers) == 0 {
		return domain.RecommendationResult{}, ErrNoAnswers
	}

	prompt, err := BuildRecommendPrompt(req.Answers)
	if err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("recommend: %w", err)
	}

	raw, err := r.Generator.Generate(ctx, prompt)
	if err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("recommend: generate: %w", err)
	}

	out, err := decodeModelOutput(raw)
	if err != nil {
		slog.ErrorContext(ctx, "model output could not be parsed", "err", err, "raw_len", len(raw))
		return domain.RecommendationResult{}, err
	}

	res := domain.RecommendationResult{
		Recommendations: out.Recommendations,
		Courses:         out.Courses,
	}

	if req.Location != nil {
		q := domain.NewQuery(*req.Location, r.RadiusKm, r.Limit)
		res.NearbyColleges = r.Places.Find(ctx, q)
	} else {
		slog.DebugContext(ctx, "no location provided, skipping nearby institutions")
	}

	res.Normalize()
	return res, nil
}
