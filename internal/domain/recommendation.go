package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Text is a scalar from model output that may arrive as a string, number, or bool.
// Anything else decodes to the empty string instead of failing the whole document.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(v))
	case '{', '[':
		*t = ""
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = Text(n.String())
	}
	return nil
}

// TextList accepts either a JSON array of scalars or a single scalar.
type TextList []Text

func (l *TextList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var items []Text
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var one Text
	if err := one.UnmarshalJSON(b); err != nil {
		return err
	}
	if one == "" {
		*l = TextList{}
		return nil
	}
	*l = TextList{one}
	return nil
}

type CareerDetails struct {
	AvgSalary Text     `json:"avg_salary"`
	Growth    Text     `json:"growth"`
	KeySkills TextList `json:"key_skills"`
}

// UnmarshalJSON decodes an object normally and treats any other value as empty details.
func (d *CareerDetails) UnmarshalJSON(b []byte) error {
	type plain CareerDetails
	var v plain
	if isObject(b) {
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
	}
	*d = CareerDetails(v)
	return nil
}

type CareerRecommendation struct {
	Title       Text          `json:"title"`
	Score       Text          `json:"score"`
	Description Text          `json:"description"`
	Details     CareerDetails `json:"details"`
}

// UnmarshalJSON accepts an object, or a bare scalar taken as the title.
func (c *CareerRecommendation) UnmarshalJSON(b []byte) error {
	type plain CareerRecommendation
	var v plain
	if isObject(b) {
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
	} else if err := v.Title.UnmarshalJSON(b); err != nil {
		return err
	}
	*c = CareerRecommendation(v)
	return nil
}

type CourseSuggestion struct {
	Title       Text `json:"title"`
	Description Text `json:"description"`
	Eligibility Text `json:"eligibility"`
	Entrance    Text `json:"entrance"`
	CareerScope Text `json:"career_scope"`
}

// UnmarshalJSON accepts an object, or a bare scalar taken as the title.
func (c *CourseSuggestion) UnmarshalJSON(b []byte) error {
	type plain CourseSuggestion
	var v plain
	if isObject(b) {
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
	} else if err := v.Title.UnmarshalJSON(b); err != nil {
		return err
	}
	*c = CourseSuggestion(v)
	return nil
}

// DecodeList decodes a JSON array of T. A lone non-null value becomes a
// one-element list and null becomes nil.
func DecodeList[T any](b []byte) ([]T, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}

	if b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var one T
	if err := json.Unmarshal(b, &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}

func isObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

// RecommendationResult is the merged payload returned for one quiz submission.
// Every sequence is non-nil so it serializes as [] rather than null.
type RecommendationResult struct {
	Recommendations []CareerRecommendation `json:"recommendations"`
	Courses         []CourseSuggestion     `json:"courses"`
	NearbyColleges  []Institution          `json:"nearby_colleges"`
}

// Normalize replaces nil sequences with empty ones.
func (r *RecommendationResult) Normalize() {
	if r.Recommendations == nil {
		r.Recommendations = []CareerRecommendation{}
	}
	for i := range r.Recommendations {
		if r.Recommendations[i].Details.KeySkills == nil {
			r.Recommendations[i].Details.KeySkills = TextList{}
		}
	}
	if r.Courses == nil {
		r.Courses = []CourseSuggestion{}
	}
	if r.NearbyColleges == nil {
		r.NearbyColleges = []Institution{}
	}
	for i := range r.NearbyColleges {
		if r.NearbyColleges[i].Categories == nil {
			r.NearbyColleges[i].Categories = []string{}
		}
	}
}
