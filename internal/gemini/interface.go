package gemini

import "context"

// Generator performs a single text-generation call against a language model.
// One call maps to one outbound request; callers decide how to degrade when
// it fails.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
