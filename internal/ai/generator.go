package ai

import "context"

// Generator is the model-provider contract the service layer depends on.
// Implementations make a single blocking call per invocation; retries,
// timeouts and failure masking are the caller's business.
type Generator interface {
	// GenerateText sends a plain prompt and returns the response text.
	// An empty response is a valid result, not an error.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateVision sends a prompt together with MIME-tagged image bytes.
	GenerateVision(ctx context.Context, prompt string, mimeType string, image []byte) (string, error)
}
