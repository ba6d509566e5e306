package client

import (
	"context"
	"fmt"

	"yujuris-api/internal/domain/entity"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient targets the Gemini API when apiKey is set and Vertex AI
// otherwise.
func NewGenAIClient(ctx context.Context, apiKey, projectID, location string) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	}
	if apiKey != "" {
		cfg = &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		}
	}
	return genai.NewClient(ctx, cfg)
}

func NewGeminiClientFromClient(c *genai.Client, model string) *GeminiClient {
	return &GeminiClient{
		client: c,
		model:  model,
	}
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string, cfg entity.GenerationConfig) (*entity.AIResponse, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Temperature),
		TopP:            genai.Ptr(cfg.TopP),
		TopK:            genai.Ptr(cfg.TopK),
		MaxOutputTokens: cfg.MaxOutputTokens,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no candidates", entity.ErrMalformedResponse)
	}

	resp := &entity.AIResponse{
		Content: result.Text(),
		Model:   g.model,
	}
	if result.UsageMetadata != nil {
		resp.TokenCount = int(result.UsageMetadata.TotalTokenCount)
	}
	return resp, nil
}
