package client

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type Embedder struct {
	client *genai.Client
	model  string // e.g., "text-embedding-004"
}

func NewEmbedderFromClient(c *genai.Client, model string) *Embedder {
	return &Embedder{
		client: c,
		model:  model,
	}
}

func (e *Embedder) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	res, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, err
	}
	if len(res.Embeddings) == 0 {
		return nil, fmt.Errorf("embedding response for model %s is empty", e.model)
	}
	return res.Embeddings[0].Values, nil
}
