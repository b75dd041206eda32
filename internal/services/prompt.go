package services

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"
)

//go:embed prompts/recommend.md
var recommendPromptRaw string

// Parsed once at package init; reused on every Recommend call.
var recommendTemplate = template.Must(template.New("recommend").Parse(recommendPromptRaw))

const (
	minCareers = 5
	minCourses = 5
)

// BuildRecommendPrompt renders the counselling prompt with the serialized quiz answers.
func BuildRecommendPrompt(answers map[string]any) (string, error) {
	encoded, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("build prompt: encode answers: %w", err)
	}

	var buf bytes.Buffer
	err = recommendTemplate.Execute(&buf, struct {
		Answers    string
		MinCareers int
		MinCourses int
	}{
		Answers:    string(encoded),
		MinCareers: minCareers,
		MinCourses: minCourses,
	})
	if err != nil {
		return "", fmt.Errorf("build prompt: render template: %w", err)
	}

	return buf.String(), nil
}
