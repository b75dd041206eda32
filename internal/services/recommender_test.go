package services

import (
	"career-guidance-service/internal/domain"
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

func newTestRecommender(t *testing.T, gen *stubGenerator) *Recommender {
	t.Helper()
	lookup := NewPlacesLookup(nil, nil, newBundledLocator(t))
	return NewRecommender(gen, lookup, domain.DefaultRadiusKm, domain.DefaultLimit)
}

func TestRecommendRejectsEmptyAnswers(t *testing.T) {
	gen := &stubGenerator{reply: sampleModelJSON}
	r := newTestRecommender(t, gen)

	_, err := r.Recommend(context.Background(), RecommendRequest{Answers: map[string]any{}})
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
	if gen.prompt != "" {
		t.Fatal("expected generator not to be called")
	}
}

func TestRecommendMergesNearbyColleges(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n" + sampleModelJSON + "\n```"}
	r := newTestRecommender(t, gen)

	loc := mumbai
	res, err := r.Recommend(context.Background(), RecommendRequest{
		Answers:  map[string]any{"q1": "I enjoy solving puzzles", "q2": 4},
		Location: &loc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Recommendations) != 1 || len(res.Courses) != 1 {
		t.Fatalf("unexpected model content: %+v", res)
	}
	if !names(res.NearbyColleges)["Indian Institute of Technology Bombay"] {
		t.Fatalf("expected nearby colleges for Mumbai, got %+v", res.NearbyColleges)
	}

	if !strings.Contains(gen.prompt, `"q1":"I enjoy solving puzzles"`) {
		t.Fatalf("expected serialized answers in prompt, got %q", gen.prompt)
	}
	if !strings.Contains(gen.prompt, "RIASEC") || !strings.Contains(gen.prompt, "at least 5 career paths") {
		t.Fatalf("expected prompt rules, got %q", gen.prompt)
	}
}

func TestRecommendWithoutLocationAndMissingKeys(t *testing.T) {
	gen := &stubGenerator{reply: `{"recommendations": [{"title": "Chef"}]}`}
	r := newTestRecommender(t, gen)

	res, err := r.Recommend(context.Background(), RecommendRequest{Answers: map[string]any{"q1": "cooking"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Courses == nil || len(res.Courses) != 0 {
		t.Fatalf("expected empty courses, got %#v", res.Courses)
	}
	if res.NearbyColleges == nil || len(res.NearbyColleges) != 0 {
		t.Fatalf("expected empty nearby colleges, got %#v", res.NearbyColleges)
	}
	if res.Recommendations[0].Details.KeySkills == nil {
		t.Fatal("expected key skills defaulted to empty list")
	}
}

func TestRecommendParseFailure(t *testing.T) {
	gen := &stubGenerator{reply: "I cannot help with that."}
	r := newTestRecommender(t, gen)

	_, err := r.Recommend(context.Background(), RecommendRequest{Answers: map[string]any{"q1": "a"}})

	var moe *ModelOutputError
	if !errors.As(err, &moe) {
		t.Fatalf("expected ModelOutputError, got %v", err)
	}
	if moe.Raw != "I cannot help with that." {
		t.Fatalf("expected raw reply preserved, got %q", moe.Raw)
	}
}

func TestRecommendAcceptsDriftedShape(t *testing.T) {
	gen := &stubGenerator{reply: `{"recommendations":[{"title":"Chef","details":"N/A"},"Baker"],"courses":{"title":"BBA"}}`}
	r := newTestRecommender(t, gen)

	res, err := r.Recommend(context.Background(), RecommendRequest{Answers: map[string]any{"q1": "cooking"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Recommendations) != 2 || res.Recommendations[1].Title != "Baker" {
		t.Fatalf("unexpected recommendations: %+v", res.Recommendations)
	}
	if res.Recommendations[0].Details.KeySkills == nil {
		t.Fatal("expected key skills defaulted to empty list")
	}
	if len(res.Courses) != 1 || res.Courses[0].Title != "BBA" {
		t.Fatalf("unexpected courses: %+v", res.Courses)
	}
}

func TestRecommendGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	r := newTestRecommender(t, gen)

	_, err := r.Recommend(context.Background(), RecommendRequest{Answers: map[string]any{"q1": "a"}})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}

	var moe *ModelOutputError
	if errors.As(err, &moe) {
		t.Fatal("generator failure must not be reported as a parse failure")
	}
}
