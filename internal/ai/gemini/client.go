// Package gemini implements ai.Generator on the Google generative AI SDK.
package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"queryx/internal/ai"
	"queryx/internal/config"
)

// Client holds one SDK client and one fixed generative model, both built at
// startup and shared read-only across requests.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// New dials the Gemini API and configures the model named in cfg.
func New(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(strings.TrimSpace(cfg.APIKey)))
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Model)
	m := cl.GenerativeModel(name)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     ptrFloat32(cfg.Options.Temperature),
		MaxOutputTokens: ptrInt32(cfg.Options.MaxOutputTokens),
		TopP:            ptrFloat32(cfg.Options.TopP),
	}

	return &Client{client: cl, model: m, name: name}, nil
}

// Name returns the configured model identifier.
func (c *Client) Name() string { return c.name }

// Close releases the underlying SDK client.
func (c *Client) Close() error { return c.client.Close() }

// GenerateText implements ai.Generator.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", ai.Classify(err)
	}
	return firstText(resp), nil
}

// GenerateVision implements ai.Generator for a prompt plus image bytes.
func (c *Client) GenerateVision(ctx context.Context, prompt string, mimeType string, image []byte) (string, error) {
	parts := []genai.Part{
		genai.Text(prompt),
		&genai.Blob{MIMEType: mimeType, Data: image},
	}
	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", ai.Classify(err)
	}
	return firstText(resp), nil
}

// firstText returns the first text part across candidates, or "" when the
// model produced none.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
