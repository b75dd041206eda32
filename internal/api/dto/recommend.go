package dto

type RecommendRequest struct {
	Answers  map[string]any    `json:"answers"`
	Location *OptionalLocation `json:"location"`
}
