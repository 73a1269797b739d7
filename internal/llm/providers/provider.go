// File path: internal/llm/providers/provider.go
package providers

import "context"

// Provider is the external text-generation collaborator: one prompt in, one
// free-text completion out. The caller owns all parsing and validation of the
// returned text.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
