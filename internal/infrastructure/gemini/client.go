package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Fixed generation parameters for every candidate call.
const (
	temperature     float32 = 0.7
	topP            float32 = 0.95
	topK            float32 = 40
	maxOutputTokens int32   = 2048
)

// TextCaller issues one generation call against a single model.
type TextCaller interface {
	Call(ctx context.Context, model, prompt string) (string, error)
}

// Client is the SDK-backed TextCaller.
type Client struct {
	client *genai.Client
}

// NewClient creates a Gemini API client from a credential.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client}, nil
}

// Call runs a single GenerateContent request and returns the raw text.
func (c *Client) Call(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(temperature),
			TopP:            genai.Ptr(topP),
			TopK:            genai.Ptr(topK),
			MaxOutputTokens: maxOutputTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", model)
	}
	return text, nil
}
