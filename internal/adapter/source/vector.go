package source

import (
	"context"
	"fmt"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"
)

// RegionalJurisdiction tags library articles valid in every OHADA member state.
const RegionalJurisdiction = "OHADA"

// VectorIndex searches the embedded legal library by semantic similarity.
type VectorIndex struct {
	embedder repository.Embedder
	store    repository.VectorStore
	limit    uint64
}

func NewVectorIndex(emb repository.Embedder, store repository.VectorStore, limit uint64) *VectorIndex {
	if limit == 0 {
		limit = 3
	}
	return &VectorIndex{embedder: emb, store: store, limit: limit}
}

func (v *VectorIndex) Name() string { return "library-index" }

func (v *VectorIndex) Lookup(ctx context.Context, q entity.Query) ([]entity.Snippet, error) {
	vector, err := v.embedder.CreateEmbedding(ctx, q.Text)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}
	snippets, err := v.store.Search(ctx, vector, v.limit, []string{q.Jurisdiction, RegionalJurisdiction})
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	return snippets, nil
}
