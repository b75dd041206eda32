package ports

import "context"

// Contract for a generative-language model that turns a prompt into raw text.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
