package main

import (
	"context"
	"log"
	"time"

	"yujuris-api/internal/adapter/client"
	"yujuris-api/internal/adapter/store"
	"yujuris-api/internal/config"
	"yujuris-api/internal/usecase"

	"github.com/qdrant/go-client/qdrant"
)

// Embeds the bundled legal library into the qdrant collection read by the
// library-index source.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("refusing to start: %v", err)
	}
	if !cfg.VectorIndexEnabled() {
		log.Fatal("QDRANT_HOST is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	genaiClient, err := client.NewGenAIClient(ctx, cfg.GeminiAPIKey, cfg.GoogleProject, cfg.GoogleLocation)
	if err != nil {
		log.Fatalf("failed to init genai client: %v", err)
	}
	embedder := client.NewEmbedderFromClient(genaiClient, cfg.EmbeddingModel)

	qClient, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.QdrantHost,
		Port:   cfg.QdrantPort,
		APIKey: cfg.QdrantAPIKey,
		UseTLS: cfg.QdrantUseTLS,
	})
	if err != nil {
		log.Fatalf("failed to connect to qdrant: %v", err)
	}
	defer qClient.Close()

	vectorStore := store.NewQdrantStore(qClient, cfg.QdrantCollName)
	if err := vectorStore.InitCollection(ctx, uint64(cfg.EmbeddingDim)); err != nil {
		log.Fatalf("failed to init qdrant collection: %v", err)
	}

	n, err := usecase.SeedLibrary(ctx, store.NewStaticLibrary(), embedder, vectorStore)
	if err != nil {
		log.Fatalf("seeding stopped after %d articles: %v", n, err)
	}
	log.Printf("Seeded %d articles into %s", n, cfg.QdrantCollName)
}
