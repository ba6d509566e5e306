package entity

import (
	"strings"
	"time"
)

const (
	DefaultJurisdiction = "CI"
	DefaultDomain       = "general"
)

type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
)

// ParseLocale maps anything that is not explicitly English to French.
func ParseLocale(s string) Locale {
	if strings.EqualFold(strings.TrimSpace(s), string(LocaleEN)) {
		return LocaleEN
	}
	return LocaleFR
}

// LanguageName is the name used when asking the model for a response language.
func (l Locale) LanguageName() string {
	if l == LocaleEN {
		return "English"
	}
	return "French"
}

// SearchRequest is the wire shape posted by the chat client.
type SearchRequest struct {
	Query    string `json:"query"`
	Country  string `json:"country"`
	Domain   string `json:"domain"`
	Language string `json:"language"`
}

// Query is a validated legal question with its locale hints.
type Query struct {
	Text         string
	Jurisdiction string
	Domain       string
	Locale       Locale
}

// NewQuery applies defaults to a request. It does not validate Text.
func NewQuery(req SearchRequest) Query {
	q := Query{
		Text:         strings.TrimSpace(req.Query),
		Jurisdiction: strings.ToUpper(strings.TrimSpace(req.Country)),
		Domain:       strings.TrimSpace(req.Domain),
		Locale:       ParseLocale(req.Language),
	}
	if q.Jurisdiction == "" {
		q.Jurisdiction = DefaultJurisdiction
	}
	if q.Domain == "" {
		q.Domain = DefaultDomain
	}
	return q
}

func (q Query) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// Snippet is a candidate reference returned by a legal source.
type Snippet struct {
	Title     string   `json:"title"`
	Article   *string  `json:"article"`
	Code      string   `json:"code"`
	URL       *string  `json:"url"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"-"`
	Relevance *float64 `json:"relevance,omitempty"`
}

// Source is a reference attached to an answer.
type Source struct {
	Title     string  `json:"title"`
	Article   *string `json:"article"`
	Code      string  `json:"code"`
	URL       *string `json:"url"`
	Excerpt   string  `json:"excerpt"`
	Relevance float64 `json:"relevance"`
}

type Answer struct {
	Text       string
	Sources    []Source
	Query      string
	ProducedAt time.Time
	Fallback   bool
}

// SearchResponse is the wire shape returned to the chat client.
type SearchResponse struct {
	Answer    string   `json:"answer"`
	Sources   []Source `json:"sources"`
	Query     string   `json:"query"`
	Timestamp string   `json:"timestamp"`
}

func (a *Answer) Response() SearchResponse {
	sources := a.Sources
	if sources == nil {
		sources = []Source{}
	}
	return SearchResponse{
		Answer:    a.Text,
		Sources:   sources,
		Query:     a.Query,
		Timestamp: a.ProducedAt.UTC().Format(time.RFC3339Nano),
	}
}

// AIResponse is what a generation backend hands back for one prompt.
type AIResponse struct {
	Content    string         `json:"content"`
	Model      string         `json:"model"`
	TokenCount int            `json:"token_count"`
	Latency    int64          `json:"latency_ms"`
	Metadata   map[string]any `json:"metadata"`
}

// GenerationConfig holds the decoding parameters for a model call.
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

// LegalGeneration keeps answers low-variance and grounded in the references.
var LegalGeneration = GenerationConfig{
	Temperature:     0.3,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 2048,
}

func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
