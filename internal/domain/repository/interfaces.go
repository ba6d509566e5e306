package repository

import (
	"context"
	"yujuris-api/internal/domain/entity"
)

// LegalSource looks up candidate references for a question.
type LegalSource interface {
	Name() string
	Lookup(ctx context.Context, q entity.Query) ([]entity.Snippet, error)
}

type AIProvider interface {
	Generate(ctx context.Context, prompt string, cfg entity.GenerationConfig) (*entity.AIResponse, error)
}

type Embedder interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type VectorStore interface {
	Search(ctx context.Context, vector []float32, limit uint64, jurisdictions []string) ([]entity.Snippet, error)
	Save(ctx context.Context, article entity.Article, vector []float32) error
}

// QuotaCounter tracks how many queries a user sent today.
type QuotaCounter interface {
	Used(ctx context.Context, userID string) (int, error)
	// IncrementWithin counts one query unless the user already reached limit
	// (negative means no limit). The check and the increment are atomic.
	IncrementWithin(ctx context.Context, userID string, limit int) (used int, ok bool, err error)
}

type LibraryRepository interface {
	List() []entity.Article
	Get(id string) (entity.Article, bool)
	Categories() []string
	Countries() []entity.Country
}

type TemplateRepository interface {
	List() []entity.Template
	Get(id string) (entity.Template, bool)
}

// DocumentAnalyzer reviews an uploaded document.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, doc entity.DocumentRequest) (*entity.DocumentAnalysis, error)
}

// TemplateGenerator renders a filled template into a document.
type TemplateGenerator interface {
	Generate(ctx context.Context, tpl entity.Template, values map[string]string) ([]byte, error)
}
