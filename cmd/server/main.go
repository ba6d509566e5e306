package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yujuris-api/internal/adapter/api"
	"yujuris-api/internal/adapter/client"
	"yujuris-api/internal/adapter/source"
	"yujuris-api/internal/adapter/store"
	"yujuris-api/internal/config"
	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"
	"yujuris-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("refusing to start: %v (set GEMINI_API_KEY or GOOGLE_CLOUD_PROJECT)", err)
	}
	ctx := context.Background()

	genaiClient, err := client.NewGenAIClient(ctx, cfg.GeminiAPIKey, cfg.GoogleProject, cfg.GoogleLocation)
	if err != nil {
		log.Fatalf("failed to init genai client: %v", err)
	}

	model := client.NewGeminiClientFromClient(genaiClient, cfg.Model)
	provider := usecase.NewResilientProvider(model, cfg.ModelTimeout)

	// Declaration order is the order sources appear in answers
	sources := []repository.LegalSource{
		source.NewChain("cndj",
			source.NewHTTPIndex("cndj-index", cfg.CNDJSearchURL, cfg.CNDJTimeout, cfg.CNDJRateLimit, cfg.CNDJRateBurst),
			source.NewCNDJCatalog(),
		),
		source.NewOHADACatalog(),
		source.NewComparativeCatalog(),
	}

	var embedder *client.Embedder
	if cfg.VectorIndexEnabled() {
		embedder = client.NewEmbedderFromClient(genaiClient, cfg.EmbeddingModel)
		if idx, err := openLibraryIndex(ctx, cfg, embedder); err != nil {
			log.Printf("[QDRANT] library index disabled: %v", err)
		} else {
			sources = append(sources, idx)
		}
	}

	search := usecase.NewLegalSearch(provider, sources, usecase.WithSourceTimeout(cfg.SourceTimeout))

	handlers := api.Handlers{
		Search:    api.NewSearchHandler(search),
		Catalog:   api.NewCatalogHandler(usecase.NewLibrary(store.NewStaticLibrary())),
		Workspace: api.NewWorkspaceHandler(usecase.NewWorkspace(store.NewStaticTemplates(), client.Unavailable{}, client.Unavailable{})),
		Version:   cfg.AppVersion,
		Env:       cfg.Env,
	}

	if cfg.QuotaEnabled() {
		// Redis for the daily query ledger
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[YUJURIS-QUOTA] Warning: redis not reachable yet: %v", err)
		}
		handlers.Quota = api.NewQuotaHandler(usecase.NewQuotaLedger(store.NewRedisQuota(rdb)))
	}

	go warmUp(provider, embedder)

	app := fiber.New(fiber.Config{
		AppName: "Yujuris Legal API",
	})
	api.SetupRouter(app, handlers)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Yujuris legal API running on port %s (model %s, %d sources)", cfg.Port, cfg.Model, len(sources))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func openLibraryIndex(ctx context.Context, cfg *config.Config, embedder *client.Embedder) (*source.VectorIndex, error) {
	qClient, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.QdrantHost,
		Port:   cfg.QdrantPort,
		APIKey: cfg.QdrantAPIKey,
		UseTLS: cfg.QdrantUseTLS,
	})
	if err != nil {
		return nil, err
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	vectorStore := store.NewQdrantStore(qClient, cfg.QdrantCollName)
	if err := vectorStore.InitCollection(initCtx, uint64(cfg.EmbeddingDim)); err != nil {
		return nil, err
	}
	return source.NewVectorIndex(embedder, vectorStore, uint64(cfg.VectorTopK)), nil
}

// warmUp wakes the model instance so the first user does not pay for it.
func warmUp(provider *usecase.ResilientProvider, embedder *client.Embedder) {
	warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if embedder != nil {
		if _, err := embedder.CreateEmbedding(warmCtx, "warmup"); err != nil {
			log.Printf("[YUJURIS-WARMER] Embedder warm-up failed: %v", err)
		}
	}

	if _, err := provider.Generate(warmCtx, ".", entity.LegalGeneration); err != nil {
		log.Printf("[YUJURIS-WARMER] Gemini warm-up failed: %v", err)
	}

	log.Println("[YUJURIS-WARMER] Pre-warm complete.")
}
