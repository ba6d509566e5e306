package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"
)

// SeedLibrary embeds every library article and stores it in the vector index.
// It stops at the first failure and reports how many articles were stored.
func SeedLibrary(ctx context.Context, lib repository.LibraryRepository, emb repository.Embedder, vs repository.VectorStore) (int, error) {
	stored := 0
	for _, a := range lib.List() {
		vector, err := emb.CreateEmbedding(ctx, EmbeddingInput(a))
		if err != nil {
			return stored, fmt.Errorf("embedding article %s: %w", a.ID, err)
		}
		if err := vs.Save(ctx, a, vector); err != nil {
			return stored, fmt.Errorf("storing article %s: %w", a.ID, err)
		}
		stored++
		log.Printf("[YUJURIS-SEED] stored article %s (%s)", a.ID, a.Title)
	}
	return stored, nil
}

// EmbeddingInput is the text embedded for an article.
func EmbeddingInput(a entity.Article) string {
	var sb strings.Builder
	sb.WriteString(a.Title)
	sb.WriteString("\n")
	sb.WriteString(a.Code)
	if a.Article != "" {
		sb.WriteString(" - ")
		sb.WriteString(a.Article)
	}
	sb.WriteString("\n")
	sb.WriteString(a.Content)
	return sb.String()
}
