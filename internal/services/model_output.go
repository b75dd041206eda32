package services

import (
	"career-guidance-service/internal/domain"
	"encoding/json"
	"fmt"
	"strings"
)

// ModelOutputError reports model text that could not be decoded as the expected JSON object.
type ModelOutputError struct {
	Raw string
	Err error
}

func (e *ModelOutputError) Error() string {
	return fmt.Sprintf("failed to parse JSON from model response: %v", e.Err)
}

func (e *ModelOutputError) Unwrap() error {
	return e.Err
}

type modelOutput struct {
	Recommendations []domain.CareerRecommendation
	Courses         []domain.CourseSuggestion
}

// rawModelOutput holds the top-level sections before their shape is known.
type rawModelOutput struct {
	Recommendations json.RawMessage `json:"recommendations"`
	Courses         json.RawMessage `json:"courses"`
}

// CleanJSON strips markdown code-fence markers that models wrap around JSON replies.
func CleanJSON(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// decodeModelOutput parses cleaned model text. The reply must be a JSON object;
// inside it, unknown keys are ignored, missing ones decode to empty sequences
// after normalization, and a section sent as a single item becomes a list of one.
func decodeModelOutput(raw string) (modelOutput, error) {
	var sections rawModelOutput
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &sections); err != nil {
		return modelOutput{}, &ModelOutputError{Raw: raw, Err: err}
	}

	recs, err := domain.DecodeList[domain.CareerRecommendation](sections.Recommendations)
	if err != nil {
		return modelOutput{}, &ModelOutputError{Raw: raw, Err: fmt.Errorf("recommendations: %w", err)}
	}

	courses, err := domain.DecodeList[domain.CourseSuggestion](sections.Courses)
	if err != nil {
		return modelOutput{}, &ModelOutputError{Raw: raw, Err: fmt.Errorf("courses: %w", err)}
	}

	return modelOutput{Recommendations: recs, Courses: courses}, nil
}
