package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"

	"golang.org/x/sync/errgroup"
)

const (
	maxAnswerSources   = 5
	maxFallbackSources = 3
	defaultRelevance   = 0.8
	fallbackRelevance  = 0.7
	excerptPreview     = 200
)

// defaultFallbackSources are attached to a canned answer when no source
// returned anything.
var defaultFallbackSources = []entity.Snippet{
	{
		Title:   "Acte uniforme relatif au droit des sociétés commerciales et du GIE",
		Article: entity.StrPtr("Article 15"),
		Code:    "OHADA - AUDSCGIE",
		URL:     entity.StrPtr("https://www.ohada.org"),
		Excerpt: "Les sociétés commerciales jouissent de la personnalité morale à compter de leur immatriculation au registre du commerce et du crédit mobilier.",
	},
	{
		Title:   "Acte uniforme relatif au droit commercial général",
		Article: entity.StrPtr("Article 23"),
		Code:    "OHADA - AUDCG",
		URL:     entity.StrPtr("https://www.ohada.org"),
		Excerpt: "Tout commerçant doit tenir une comptabilité selon les normes comptables en vigueur dans l'État partie.",
	},
}

type LegalSearch struct {
	sources       []repository.LegalSource
	aiProvider    repository.AIProvider
	sourceTimeout time.Duration
	now           func() time.Time
}

type LegalSearchOption func(*LegalSearch)

// WithSourceTimeout caps each source lookup.
func WithSourceTimeout(d time.Duration) LegalSearchOption {
	return func(s *LegalSearch) {
		if d > 0 {
			s.sourceTimeout = d
		}
	}
}

func WithClock(now func() time.Time) LegalSearchOption {
	return func(s *LegalSearch) {
		s.now = now
	}
}

func NewLegalSearch(ai repository.AIProvider, sources []repository.LegalSource, opts ...LegalSearchOption) *LegalSearch {
	s := &LegalSearch{
		sources:       sources,
		aiProvider:    ai,
		sourceTimeout: 4 * time.Second,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle answers a legal question. The only error it returns is
// ErrEmptyQuery; upstream failures degrade to a canned answer.
func (u *LegalSearch) Handle(ctx context.Context, q entity.Query) (*entity.Answer, error) {
	// 1. Reject before any network call
	if err := q.Validate(); err != nil {
		return nil, err
	}

	// 2. Gather references from every source
	candidates := u.gather(ctx, q)

	// 3. Ask the model
	prompt := BuildLegalPrompt(q, candidates)
	resp, err := u.aiProvider.Generate(ctx, prompt, entity.LegalGeneration)

	var answer *entity.Answer
	if err != nil {
		log.Printf("[YUJURIS-SEARCH] using fallback answer (topic=%s): %v", ClassifyTopic(q.Text), err)
		answer = u.fallback(q, candidates)
	} else {
		answer = &entity.Answer{
			Text:    resp.Content,
			Sources: toSources(candidates, maxAnswerSources, "Document juridique", "Code non spécifié", nil),
		}
	}

	// 4. Always stamp the echo fields
	answer.Query = q.Text
	answer.ProducedAt = u.now().UTC()
	return answer, nil
}

// gather fans out to all sources. Results keep the declaration order of the
// sources regardless of completion order.
func (u *LegalSearch) gather(ctx context.Context, q entity.Query) []entity.Snippet {
	perSource := make([][]entity.Snippet, len(u.sources))

	var g errgroup.Group
	for i, src := range u.sources {
		g.Go(func() error {
			snippets, err := u.lookup(ctx, src, q)
			if err != nil {
				log.Printf("[YUJURIS-SOURCE] %s skipped: %v", src.Name(), err)
				return nil
			}
			perSource[i] = snippets
			return nil
		})
	}
	_ = g.Wait()

	var all []entity.Snippet
	for _, snippets := range perSource {
		all = append(all, snippets...)
	}
	return all
}

func (u *LegalSearch) lookup(ctx context.Context, src repository.LegalSource, q entity.Query) (snippets []entity.Snippet, err error) {
	defer func() {
		if p := recover(); p != nil {
			snippets, err = nil, fmt.Errorf("%w: panic: %v", entity.ErrSourceUnavailable, p)
		}
	}()

	lctx, cancel := context.WithTimeout(ctx, u.sourceTimeout)
	defer cancel()

	snippets, err = src.Lookup(lctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrSourceUnavailable, err)
	}
	return snippets, nil
}

func (u *LegalSearch) fallback(q entity.Query, candidates []entity.Snippet) *entity.Answer {
	if len(candidates) == 0 {
		candidates = defaultFallbackSources
	}
	fixed := fallbackRelevance
	return &entity.Answer{
		Text:     FallbackAnswer(q),
		Sources:  toSources(candidates, maxFallbackSources, "Source juridique", "OHADA", &fixed),
		Fallback: true,
	}
}

// toSources maps the first n snippets to answer sources. A nil relevance keeps
// what the source declared.
func toSources(snippets []entity.Snippet, n int, titlePrefix, defaultCode string, relevance *float64) []entity.Source {
	n = min(n, len(snippets))
	out := make([]entity.Source, 0, n)
	for i, s := range snippets[:n] {
		src := entity.Source{
			Title:     s.Title,
			Article:   s.Article,
			Code:      s.Code,
			URL:       s.URL,
			Excerpt:   s.Excerpt,
			Relevance: defaultRelevance,
		}
		if src.Title == "" {
			src.Title = fmt.Sprintf("%s %d", titlePrefix, i+1)
		}
		if src.Code == "" {
			src.Code = defaultCode
		}
		if src.Excerpt == "" {
			if relevance == nil && s.Content != "" {
				src.Excerpt = truncateRunes(s.Content, excerptPreview) + "..."
			} else {
				src.Excerpt = "Extrait non disponible"
			}
		}
		switch {
		case relevance != nil:
			src.Relevance = *relevance
		case s.Relevance != nil:
			src.Relevance = clampRelevance(*s.Relevance)
		}
		out = append(out, src)
	}
	return out
}

func clampRelevance(v float64) float64 {
	if math.IsNaN(v) {
		return defaultRelevance
	}
	return math.Max(0, math.Min(1, v))
}
