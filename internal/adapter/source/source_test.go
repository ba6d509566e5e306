package source

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuery() entity.Query {
	return entity.NewQuery(entity.SearchRequest{Query: "bail commercial", Country: "ci"})
}

func TestHTTPIndex_Lookup(t *testing.T) {
	var got indexRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"title":"Bail","article":"Article 101","code":"AUDCG","url":"https://x/1","excerpt":"Le bail...","relevance":0.92},{"title":"Sans article","code":"CI"}]}`))
	}))
	defer server.Close()

	idx := NewHTTPIndex("cndj-index", server.URL, time.Second, 0, 1)
	snippets, err := idx.Lookup(context.Background(), testQuery())
	require.NoError(t, err)

	assert.Equal(t, indexRequest{Q: "bail commercial", Type: "all", Limit: 10}, got)
	require.Len(t, snippets, 2)
	assert.Equal(t, "Bail", snippets[0].Title)
	require.NotNil(t, snippets[0].Article)
	assert.Equal(t, "Article 101", *snippets[0].Article)
	require.NotNil(t, snippets[0].Relevance)
	assert.Equal(t, 0.92, *snippets[0].Relevance)
	assert.Nil(t, snippets[1].Article)
	assert.Nil(t, snippets[1].URL)
	assert.Nil(t, snippets[1].Relevance)
}

func TestHTTPIndex_Errors(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	_, err := NewHTTPIndex("cndj-index", failing.URL, time.Second, 0, 1).Lookup(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>"))
	}))
	defer garbage.Close()

	_, err = NewHTTPIndex("cndj-index", garbage.URL, time.Second, 0, 1).Lookup(context.Background(), testQuery())
	assert.Error(t, err)
}

func TestHTTPIndex_RespectsContext(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPIndex("cndj-index", slow.URL, 5*time.Second, 0, 1).Lookup(ctx, testQuery())
	assert.Error(t, err)
}

func TestCatalog_ExpandsSites(t *testing.T) {
	snippets, err := NewOHADACatalog().Lookup(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, snippets, 3)
	assert.Equal(t, "https://www.ohada.org/audscgie/article-5", *snippets[0].URL)
	assert.Equal(t, "https://www.droit-afrique.com/audscgie/article-5", *snippets[1].URL)
	assert.Equal(t, "https://www.profession-juriste.ci/audscgie/article-5", *snippets[2].URL)
	assert.Equal(t, 0.88, *snippets[0].Relevance)

	snippets, err = NewCNDJCatalog().Lookup(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "https://biblio.cndj.ci/doc/code-civil-1134", *snippets[0].URL)

	snippets, err = NewComparativeCatalog().Lookup(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Len(t, snippets, 3)
}

func TestCatalog_AnswersAfterDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	snippets, err := NewOHADACatalog().Lookup(ctx, testQuery())
	require.NoError(t, err)
	assert.Len(t, snippets, 3)
}

type stubSource struct {
	name     string
	snippets []entity.Snippet
	err      error
	calls    int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Lookup(context.Context, entity.Query) ([]entity.Snippet, error) {
	s.calls++
	return s.snippets, s.err
}

func TestChain(t *testing.T) {
	down := &stubSource{name: "down", err: errors.New("unreachable")}
	backup := &stubSource{name: "backup", snippets: []entity.Snippet{{Title: "B"}}}
	never := &stubSource{name: "never"}

	got, err := NewChain("cndj", down, backup, never).Lookup(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Equal(t, []entity.Snippet{{Title: "B"}}, got)
	assert.Zero(t, never.calls)

	_, err = NewChain("cndj", down, &stubSource{name: "down2", err: errors.New("also down")}).Lookup(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
	assert.Contains(t, err.Error(), "also down")
}

func TestChain_HTTPIndexFallsBackToCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	var src repository.LegalSource = NewChain("cndj",
		NewHTTPIndex("cndj-index", server.URL, time.Second, 0, 1),
		NewCNDJCatalog(),
	)
	got, err := src.Lookup(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "cndj", src.Name())
}

func TestChain_CatalogSurvivesExhaustedBudget(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	src := NewChain("cndj",
		NewHTTPIndex("cndj-index", slow.URL, 5*time.Second, 0, 1),
		NewCNDJCatalog(),
	)
	got, err := src.Lookup(ctx, testQuery())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHTTPIndex_ThrottleWaitIsBounded(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	// One token per minute: the second call would queue far past the bound
	idx := NewHTTPIndex("cndj-index", server.URL, time.Second, 1.0/60, 1)
	_, err := idx.Lookup(context.Background(), testQuery())
	require.NoError(t, err)

	start := time.Now()
	_, err = idx.Lookup(context.Background(), testQuery())
	assert.ErrorContains(t, err, "throttled")
	assert.Less(t, time.Since(start), time.Second)
	assert.EqualValues(t, 1, hits.Load())
}

type stubEmbedder struct{ err error }

func (s stubEmbedder) CreateEmbedding(context.Context, string) ([]float32, error) {
	return []float32{0.1, 0.2}, s.err
}

type stubVectorStore struct {
	jurisdictions []string
	limit         uint64
}

func (s *stubVectorStore) Search(_ context.Context, _ []float32, limit uint64, jurisdictions []string) ([]entity.Snippet, error) {
	s.limit = limit
	s.jurisdictions = jurisdictions
	return []entity.Snippet{{Title: "hit"}}, nil
}

func (s *stubVectorStore) Save(context.Context, entity.Article, []float32) error { return nil }

func TestVectorIndex(t *testing.T) {
	vs := &stubVectorStore{}
	idx := NewVectorIndex(stubEmbedder{}, vs, 0)

	got, err := idx.Lookup(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 3, vs.limit)
	assert.Equal(t, []string{"CI", RegionalJurisdiction}, vs.jurisdictions)

	_, err = NewVectorIndex(stubEmbedder{err: errors.New("quota")}, vs, 2).Lookup(context.Background(), testQuery())
	assert.ErrorContains(t, err, "embedding generation failed")
}
