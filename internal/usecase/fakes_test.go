package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"yujuris-api/internal/domain/entity"
)

type fakeProvider struct {
	content string
	err     error
	panics  bool
	calls   atomic.Int32

	mu         sync.Mutex
	lastPrompt string
	lastCfg    entity.GenerationConfig
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, cfg entity.GenerationConfig) (*entity.AIResponse, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastPrompt = prompt
	f.lastCfg = cfg
	f.mu.Unlock()
	if f.panics {
		panic("unexpected payload")
	}
	if f.err != nil {
		return nil, f.err
	}
	return &entity.AIResponse{Content: f.content, Model: "fake"}, nil
}

type fakeSource struct {
	name     string
	snippets []entity.Snippet
	err      error
	block    bool
	calls    atomic.Int32
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Lookup(ctx context.Context, q entity.Query) ([]entity.Snippet, error) {
	f.calls.Add(1)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.snippets, nil
}

type panicSource struct{}

func (panicSource) Name() string { return "panicky" }

func (panicSource) Lookup(context.Context, entity.Query) ([]entity.Snippet, error) {
	panic("boom")
}

var errUpstream = errors.New("upstream 503")

func snippet(title string, relevance float64) entity.Snippet {
	return entity.Snippet{
		Title:     title,
		Code:      "OHADA",
		Excerpt:   title + " excerpt",
		Relevance: &relevance,
	}
}
